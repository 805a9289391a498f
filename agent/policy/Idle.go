package policy

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/timestep"
)

// Idle always declines every request. The idle action is always
// available, so Idle never selects an unavailable action.
type Idle struct{}

// NewIdle returns a new Idle policy
func NewIdle() Idle {
	return Idle{}
}

// SelectAction returns the index of the idle action, 0
func (Idle) SelectAction(_ timestep.TimeStep, available []int) (int, error) {
	for _, a := range available {
		if a == 0 {
			return 0, nil
		}
	}
	return 0, fmt.Errorf("selectAction: idle not available in %v: %w",
		available, ErrNoActions)
}

// String returns the name of the policy
func (Idle) String() string {
	return "Idle"
}
