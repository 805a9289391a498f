// Package agent defines the interface of agents acting in environments
// with a discrete action space in which only some actions are
// available in each state
package agent

import (
	"github.com/samuelfneumann/cabdriver/timestep"
)

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. Given the most recent
// TimeStep and the indices of the actions available in the current
// state, a Policy returns the index of the action to take, which must
// be one of the available actions.
type Policy interface {
	SelectAction(t timestep.TimeStep, available []int) (int, error)
}
