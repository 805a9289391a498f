// Package environment outlines the interfaces and structs needed to
// implement concrete environments
package environment

import (
	"github.com/samuelfneumann/cabdriver/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments. States are returned as indices
// into the environment's enumerated state space.
type Starter interface {
	Start() int
}

// Ender determines when an episode ends. If the argument TimeStep is
// the last in the episode, End modifies the TimeStep so that its
// StepType is timestep.Last and sets the appropriate EndType.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// Environment implements a simulated environment with a discrete,
// enumerable action space. Actions are referred to by their index in
// the environment's action space. Not every action is legal in every
// state: Available returns the indices of the actions which may be
// taken from the current state.
type Environment interface {
	Reset() (timestep.TimeStep, error)
	Step(action int) (timestep.TimeStep, bool, error)
	Available() ([]int, error)
	CurrentTimeStep() timestep.TimeStep

	RewardSpec() Spec
	DiscountSpec() Spec
	ObservationSpec() Spec
	ActionSpec() Spec
}
