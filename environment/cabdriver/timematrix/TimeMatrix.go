// Package timematrix implements the travel time lookup table used by
// the cab driver environment.
//
// A TimeMatrix is a 4-dimensional table of shape
// (locations, locations, hours, days). Entry (i, j, h, d) holds the
// number of hours needed to drive from location i to location j when
// departing at hour h on day d. The table itself is 0-indexed along its
// location axes, while locations in the cab driver MDP are numbered
// from 1. Duration is the only method which translates between the two
// and should be used for all lookups with MDP locations.
package timematrix

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"
	"gorgonia.org/tensor"
)

var (
	// ErrShape is returned when a table does not have the shape
	// (locations, locations, hours, days) expected by its caller
	ErrShape = errors.New("timematrix: invalid shape")

	// ErrOutOfRange is returned when a lookup falls outside the table
	ErrOutOfRange = errors.New("timematrix: index out of range")

	// ErrDtype is returned when a table holds non-numeric data
	ErrDtype = errors.New("timematrix: unsupported dtype")

	// ErrDuration is returned when a table holds a travel time which
	// is negative, not finite, or too large to be counted in hours
	ErrDuration = errors.New("timematrix: invalid travel time")
)

// MaxDuration is the largest travel time, in hours, a table may hold
const MaxDuration = math.MaxInt32

// TimeMatrix is a read-only travel time lookup table backed by a
// 4-dimensional tensor of float64 travel durations in hours
type TimeMatrix struct {
	t                      *tensor.Dense
	locations, hours, days int
}

// New returns a TimeMatrix using backing as its data in row-major
// order. The length of backing must be locations² × hours × days, and
// every travel time must lie in [0, MaxDuration].
func New(backing []float64, locations, hours, days int) (*TimeMatrix, error) {
	if locations <= 0 || hours <= 0 || days <= 0 {
		return nil, fmt.Errorf("new: dimensions (%d, %d, %d, %d) must be "+
			"positive: %w", locations, locations, hours, days, ErrShape)
	}

	want := locations * locations * hours * days
	if len(backing) != want {
		return nil, fmt.Errorf("new: backing has %d elements, want %d: %w",
			len(backing), want, ErrShape)
	}

	for i, v := range backing {
		if math.IsNaN(v) || v < 0 || v > MaxDuration {
			return nil, fmt.Errorf("new: travel time %v at element %d "+
				"∉ [0, %d]: %w", v, i, MaxDuration, ErrDuration)
		}
	}

	t := tensor.New(
		tensor.WithShape(locations, locations, hours, days),
		tensor.WithBacking(backing),
	)

	return &TimeMatrix{t, locations, hours, days}, nil
}

// FromTensor returns a TimeMatrix wrapping t. The tensor must be
// 4-dimensional with equal first and second axes. Numeric tensors
// which do not hold float64 data are converted to float64.
func FromTensor(t *tensor.Dense) (*TimeMatrix, error) {
	shape := t.Shape()
	if len(shape) != 4 {
		return nil, fmt.Errorf("fromTensor: tensor has %d dimensions, "+
			"want 4: %w", len(shape), ErrShape)
	}
	if shape[0] != shape[1] {
		return nil, fmt.Errorf("fromTensor: location axes differ (%d != "+
			"%d): %w", shape[0], shape[1], ErrShape)
	}

	data, err := toFloat64s(t.Data())
	if err != nil {
		return nil, fmt.Errorf("fromTensor: %w", err)
	}

	return New(data, shape[0], shape[2], shape[3])
}

// Read reads a TimeMatrix stored in NumPy's .npy format from r
func Read(r io.Reader) (*TimeMatrix, error) {
	t := new(tensor.Dense)
	if err := t.ReadNpy(r); err != nil {
		return nil, fmt.Errorf("read: could not decode npy data: %v", err)
	}
	return FromTensor(t)
}

// Load loads a TimeMatrix from the .npy file at path
func Load(path string) (*TimeMatrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load: could not open time matrix: %v", err)
	}
	defer file.Close()

	tm, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("load %v: %w", path, err)
	}
	return tm, nil
}

// Write writes the TimeMatrix to w in NumPy's .npy format
func (tm *TimeMatrix) Write(w io.Writer) error {
	if err := tm.t.WriteNpy(w); err != nil {
		return fmt.Errorf("write: could not encode npy data: %v", err)
	}
	return nil
}

// Save saves the TimeMatrix to the .npy file at path
func (tm *TimeMatrix) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save: could not create file: %v", err)
	}

	if err := tm.Write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Dims returns the number of locations, hours, and days the
// TimeMatrix covers
func (tm *TimeMatrix) Dims() (locations, hours, days int) {
	return tm.locations, tm.hours, tm.days
}

// Validate returns an error wrapping ErrShape if the TimeMatrix cannot
// serve lookups for an environment with the argument dimensions
func (tm *TimeMatrix) Validate(locations, hours, days int) error {
	if tm == nil {
		return fmt.Errorf("validate: nil time matrix: %w", ErrShape)
	}
	if tm.locations < locations || tm.hours < hours || tm.days < days {
		return fmt.Errorf("validate: shape (%d, %d, %d, %d) cannot cover "+
			"(%d, %d, %d, %d): %w", tm.locations, tm.locations, tm.hours,
			tm.days, locations, locations, hours, days, ErrShape)
	}
	return nil
}

// Duration returns the travel time in whole hours from location from
// to location to when departing at the argument hour and day.
// Locations are numbered from 1, as in the cab driver MDP; the offset
// to the 0-indexed table is applied here. Fractional durations are
// truncated.
func (tm *TimeMatrix) Duration(from, to, hour, day int) (int, error) {
	i, j := from-1, to-1
	if i < 0 || i >= tm.locations || j < 0 || j >= tm.locations ||
		hour < 0 || hour >= tm.hours || day < 0 || day >= tm.days {
		return 0, fmt.Errorf("duration: (%d -> %d, hour %d, day %d) "+
			"outside shape (%d, %d, %d, %d): %w", from, to, hour, day,
			tm.locations, tm.locations, tm.hours, tm.days, ErrOutOfRange)
	}

	v, err := tm.t.At(i, j, hour, day)
	if err != nil {
		return 0, fmt.Errorf("duration: %v: %w", err, ErrOutOfRange)
	}
	return int(v.(float64)), nil
}

// Min returns the smallest travel time in the table
func (tm *TimeMatrix) Min() float64 {
	return floats.Min(tm.t.Data().([]float64))
}

// Max returns the largest travel time in the table
func (tm *TimeMatrix) Max() float64 {
	return floats.Max(tm.t.Data().([]float64))
}

// String returns a string representation of the TimeMatrix
func (tm *TimeMatrix) String() string {
	str := "TimeMatrix | Shape: (%d, %d, %d, %d)  |  Min: %v  |  Max: %v"
	return fmt.Sprintf(str, tm.locations, tm.locations, tm.hours, tm.days,
		tm.Min(), tm.Max())
}

// toFloat64s converts numeric tensor backing data to float64
func toFloat64s(data interface{}) ([]float64, error) {
	switch d := data.(type) {
	case []float64:
		out := make([]float64, len(d))
		copy(out, d)
		return out, nil
	case []float32:
		return convert(len(d), func(i int) float64 { return float64(d[i]) }), nil
	case []int:
		return convert(len(d), func(i int) float64 { return float64(d[i]) }), nil
	case []int64:
		return convert(len(d), func(i int) float64 { return float64(d[i]) }), nil
	case []int32:
		return convert(len(d), func(i int) float64 { return float64(d[i]) }), nil
	case []int16:
		return convert(len(d), func(i int) float64 { return float64(d[i]) }), nil
	case []int8:
		return convert(len(d), func(i int) float64 { return float64(d[i]) }), nil
	case []uint8:
		return convert(len(d), func(i int) float64 { return float64(d[i]) }), nil
	default:
		return nil, fmt.Errorf("%T: %w", data, ErrDtype)
	}
}

func convert(n int, at func(int) float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = at(i)
	}
	return out
}
