// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType denotes the way in which an episode ended
type EndType int

const (
	// Episode has not ended yet
	Nil EndType = iota

	// Episode ended because the step limit was reached
	StepLimit

	// Episode ended because the driver accumulated the maximum number
	// of working hours
	HourLimit

	// Episode ended because a terminal state was reached
	TerminalStateReached
)

func (e EndType) String() string {
	switch e {
	case StepLimit:
		return "StepLimit"
	case HourLimit:
		return "HourLimit"
	case TerminalStateReached:
		return "TerminalStateReached"
	default:
		return "Nil"
	}
}

// TimeStep packages together a single timestep in an environment.
//
// Hours stores the total number of hours elapsed in the episode when
// the TimeStep was generated. Environments without a notion of
// elapsed time leave it at 0.
type TimeStep struct {
	StepType
	Reward      float64
	Discount    float64
	Observation mat.Vector
	Number      int
	Hours       int
	endType     EndType
}

// New constructs a new TimeStep
func New(t StepType, r, d float64, o mat.Vector, n, hours int) TimeStep {
	return TimeStep{
		StepType:    t,
		Reward:      r,
		Discount:    d,
		Observation: o,
		Number:      n,
		Hours:       hours,
		endType:     Nil,
	}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd records how the episode ended
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
}

// EndType returns how the episode ended. If the TimeStep is not the
// last in its episode, Nil is returned.
func (t *TimeStep) EndType() EndType {
	return t.endType
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Step Number:  %v  |  Hours: %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Discount, t.Number,
		t.Hours)
}
