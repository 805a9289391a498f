package tracker

import (
	"path/filepath"
	"testing"

	ts "github.com/samuelfneumann/cabdriver/timestep"
	"gonum.org/v1/gonum/mat"
)

func episode(rewards ...float64) []ts.TimeStep {
	obs := mat.NewVecDense(1, nil)
	steps := []ts.TimeStep{ts.New(ts.First, 0, 1, obs, 0, 0)}
	for i, r := range rewards {
		stepType := ts.Mid
		if i == len(rewards)-1 {
			stepType = ts.Last
		}
		steps = append(steps, ts.New(stepType, r, 1, obs, i+1, i+1))
	}
	return steps
}

func TestReturn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "returns.bin")
	r := NewReturn(path)

	for _, step := range episode(-5, 12, 1) {
		r.Track(step)
	}
	for _, step := range episode(-5, -5) {
		r.Track(step)
	}

	// Unfinished episodes are not recorded
	for _, step := range episode(4, 4, 4)[:2] {
		r.Track(step)
	}

	want := []float64{8, -10}
	got := r.Returns()
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("returns: want %v, got %v", want, got)
	}

	if err := r.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := LoadData(path)
	if err != nil {
		t.Fatalf("loadData: %v", err)
	}
	if len(data) != 2 || data[0] != 8 || data[1] != -10 {
		t.Errorf("loadData: want %v, got %v", want, data)
	}
}

func TestReturnNonSequential(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("track: want panic on non-sequential timesteps")
		}
	}()

	steps := episode(1, 2, 3)
	r := NewReturn("")
	r.Track(steps[0])
	r.Track(steps[2])
}

func TestEpisodeLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lengths.bin")
	e := NewEpisodeLength(path)

	for _, step := range episode(1, 1, 1) {
		e.Track(step)
	}
	for _, step := range episode(1) {
		e.Track(step)
	}

	if got := e.Lengths(); len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Errorf("lengths: want [3 1], got %v", got)
	}

	if err := e.Save(); err != nil {
		t.Fatal(err)
	}
	if data, err := LoadData(path); err != nil || len(data) != 2 {
		t.Errorf("loadData: got %v, %v", data, err)
	}
}
