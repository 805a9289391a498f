package timematrix

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gorgonia.org/tensor"
)

func TestNewShape(t *testing.T) {
	if _, err := New(make([]float64, 10), 5, 24, 7); !errors.Is(err, ErrShape) {
		t.Errorf("new: want ErrShape for short backing, got %v", err)
	}
	if _, err := New(nil, 0, 24, 7); !errors.Is(err, ErrShape) {
		t.Errorf("new: want ErrShape for zero locations, got %v", err)
	}

	tm, err := New(make([]float64, 5*5*24*7), 5, 24, 7)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if l, h, d := tm.Dims(); l != 5 || h != 24 || d != 7 {
		t.Errorf("dims: want (5, 24, 7), got (%v, %v, %v)", l, h, d)
	}
}

// TestDurationOffset ensures that MDP locations (numbered from 1) map
// to table indices (numbered from 0)
func TestDurationOffset(t *testing.T) {
	const locations, hours, days = 5, 24, 7
	backing := make([]float64, locations*locations*hours*days)

	// Table entry [1][3][5][1] is location 2 -> location 4
	index := ((1*locations+3)*hours+5)*days + 1
	backing[index] = 3

	tm, err := New(backing, locations, hours, days)
	if err != nil {
		t.Fatal(err)
	}

	got, err := tm.Duration(2, 4, 5, 1)
	if err != nil {
		t.Fatalf("duration: %v", err)
	}
	if got != 3 {
		t.Errorf("duration(2, 4, 5, 1): want 3, got %v", got)
	}

	// The unshifted lookup must not see the value
	if got, _ := tm.Duration(1, 3, 5, 1); got != 0 {
		t.Errorf("duration(1, 3, 5, 1): want 0, got %v", got)
	}
}

func TestDurationOutOfRange(t *testing.T) {
	tm, err := Constant(5, 24, 7, 2)
	if err != nil {
		t.Fatal(err)
	}

	tests := [][4]int{
		{0, 1, 0, 0},
		{1, 6, 0, 0},
		{1, 2, 24, 0},
		{1, 2, -1, 0},
		{1, 2, 0, 7},
	}
	for _, test := range tests {
		_, err := tm.Duration(test[0], test[1], test[2], test[3])
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("duration%v: want ErrOutOfRange, got %v", test, err)
		}
	}
}

func TestDurationTruncates(t *testing.T) {
	tm, err := FromFunc(2, 24, 7, func(from, to, hour, day int) float64 {
		if from == to {
			return 0
		}
		return 2.7
	})
	if err != nil {
		t.Fatal(err)
	}

	if got, _ := tm.Duration(1, 2, 0, 0); got != 2 {
		t.Errorf("duration: want 2 (truncated from 2.7), got %v", got)
	}
}

func TestValidate(t *testing.T) {
	tm, err := Constant(5, 24, 7, 1)
	if err != nil {
		t.Fatal(err)
	}

	if err := tm.Validate(5, 24, 7); err != nil {
		t.Errorf("validate: unexpected error %v", err)
	}
	if err := tm.Validate(6, 24, 7); !errors.Is(err, ErrShape) {
		t.Errorf("validate: want ErrShape for too many locations, got %v",
			err)
	}

	var nilMatrix *TimeMatrix
	if err := nilMatrix.Validate(5, 24, 7); !errors.Is(err, ErrShape) {
		t.Errorf("validate: want ErrShape for nil matrix, got %v", err)
	}
}

func TestRandom(t *testing.T) {
	tm, err := Random(5, 24, 7, 11, rand.NewSource(1))
	if err != nil {
		t.Fatal(err)
	}

	for from := 1; from <= 5; from++ {
		for to := 1; to <= 5; to++ {
			for h := 0; h < 24; h++ {
				for d := 0; d < 7; d++ {
					got, err := tm.Duration(from, to, h, d)
					if err != nil {
						t.Fatal(err)
					}
					if from == to && got != 0 {
						t.Fatalf("duration(%v, %v, %v, %v): want 0 on "+
							"the diagonal, got %v", from, to, h, d, got)
					}
					if from != to && (got < 1 || got > 11) {
						t.Fatalf("duration(%v, %v, %v, %v) = %v ∉ [1, 11]",
							from, to, h, d, got)
					}
				}
			}
		}
	}

	if _, err := Random(5, 24, 7, 0, rand.NewSource(1)); err == nil {
		t.Error("random: want error for non-positive maxHours")
	}
}

func TestNpyRoundTrip(t *testing.T) {
	tm, err := Random(3, 24, 7, 5, rand.NewSource(7))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := tm.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}

	read, err := Read(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if l, h, d := read.Dims(); l != 3 || h != 24 || d != 7 {
		t.Fatalf("dims: want (3, 24, 7), got (%v, %v, %v)", l, h, d)
	}
	for from := 1; from <= 3; from++ {
		for to := 1; to <= 3; to++ {
			want, _ := tm.Duration(from, to, 13, 4)
			got, _ := read.Duration(from, to, 13, 4)
			if want != got {
				t.Errorf("duration(%v, %v, 13, 4): want %v, got %v", from,
					to, want, got)
			}
		}
	}
}

func TestFromTensorConvertsIntegers(t *testing.T) {
	backing := make([]int64, 2*2*24*7)
	for i := range backing {
		backing[i] = 4
	}
	dense := tensor.New(tensor.WithShape(2, 2, 24, 7),
		tensor.WithBacking(backing))

	tm, err := FromTensor(dense)
	if err != nil {
		t.Fatalf("fromTensor: %v", err)
	}
	if got, _ := tm.Duration(2, 1, 0, 0); got != 4 {
		t.Errorf("duration: want 4, got %v", got)
	}
	if tm.Max() != 4 || tm.Min() != 4 {
		t.Errorf("min/max: want 4/4, got %v/%v", tm.Min(), tm.Max())
	}

	bad := tensor.New(tensor.WithShape(2, 3, 24, 7),
		tensor.WithBacking(make([]float64, 2*3*24*7)))
	if _, err := FromTensor(bad); !errors.Is(err, ErrShape) {
		t.Errorf("fromTensor: want ErrShape for unequal location axes, "+
			"got %v", err)
	}
}

func TestInvalidDurations(t *testing.T) {
	invalid := []float64{-1, -0.5, math.NaN(), math.Inf(1), math.Inf(-1),
		MaxDuration + 1}

	for _, v := range invalid {
		backing := make([]float64, 2*2*3*2)
		backing[5] = v
		if _, err := New(backing, 2, 3, 2); !errors.Is(err, ErrDuration) {
			t.Errorf("new with travel time %v: want ErrDuration, got %v", v,
				err)
		}
	}

	if _, err := Constant(2, 3, 2, -3); !errors.Is(err, ErrDuration) {
		t.Errorf("constant(-3): want ErrDuration, got %v", err)
	}

	// Conversion from integer tensors is checked as well
	backing := make([]int64, 2*2*3*2)
	backing[1] = -4
	dense := tensor.New(tensor.WithShape(2, 2, 3, 2),
		tensor.WithBacking(backing))
	if _, err := FromTensor(dense); !errors.Is(err, ErrDuration) {
		t.Errorf("fromTensor: want ErrDuration for a negative entry, got %v",
			err)
	}

	// The bounds themselves are valid
	backing2 := make([]float64, 2*2*3*2)
	backing2[3] = MaxDuration
	if _, err := New(backing2, 2, 3, 2); err != nil {
		t.Errorf("new with travel time %v: %v", float64(MaxDuration), err)
	}
}
