// Package policy implements baseline policies for the cab driver
// environment. None of these policies learn.
package policy

import (
	"errors"
	"fmt"

	"github.com/samuelfneumann/cabdriver/timestep"
	"golang.org/x/exp/rand"
)

// ErrNoActions is returned when a policy is asked to select an action
// but no actions are available
var ErrNoActions = errors.New("policy: no available actions")

// Random selects uniformly at random from the available actions
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a new Random policy seeded with seed
func NewRandom(seed uint64) *Random {
	return &Random{rand.New(rand.NewSource(seed))}
}

// SelectAction selects an available action uniformly at random
func (r *Random) SelectAction(_ timestep.TimeStep,
	available []int) (int, error) {
	if len(available) == 0 {
		return 0, fmt.Errorf("selectAction: %w", ErrNoActions)
	}
	return available[r.rng.Intn(len(available))], nil
}

// String returns the name of the policy
func (r *Random) String() string {
	return "Random"
}
