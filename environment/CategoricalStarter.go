package environment

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// CategoricalStarter returns starting state indices sampled from a
// uniform categorical distribution over (0, 1, 2, ... n-1), where n is
// the number of states in an environment's enumerated state space.
type CategoricalStarter struct {
	rand distuv.Categorical
}

// NewCategoricalStarter returns a new CategoricalStarter sampling
// uniformly from (0, 1, 2, ... states-1) using the argument source
func NewCategoricalStarter(states int, source rand.Source) CategoricalStarter {
	// Create the weights for the uniform categorical distribution
	weights := make([]float64, states)
	for i := range weights {
		weights[i] = 1.0 / float64(len(weights))
	}

	return CategoricalStarter{distuv.NewCategorical(weights, source)}
}

// Start returns the index of a starting state
func (c CategoricalStarter) Start() int {
	return int(c.rand.Rand())
}
