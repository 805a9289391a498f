package policy

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/cabdriver/environment/cabdriver"
	"github.com/samuelfneumann/cabdriver/timestep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy with respect to the immediate
// reward of each available ride request. With probability ε, an
// available action is selected uniformly at random. Otherwise, the
// action with the largest immediate reward is selected, with ties
// broken in favour of the earliest available action.
//
// EGreedy reads the current state and time matrix of the environment
// it is created with, so it must only be used on that environment.
type EGreedy struct {
	env     *cabdriver.Discrete
	epsilon float64
	explore distuv.Bernoulli
	rng     *rand.Rand
}

// NewEGreedy returns a new EGreedy policy for env, selecting random
// actions with probability e
func NewEGreedy(e float64, env *cabdriver.Discrete, seed uint64) (*EGreedy,
	error) {
	if e < 0 || e > 1 {
		return nil, fmt.Errorf("newEGreedy: ε = %v ∉ [0, 1]", e)
	}

	source := rand.NewSource(seed)
	return &EGreedy{
		env:     env,
		epsilon: e,
		explore: distuv.Bernoulli{P: e, Src: source},
		rng:     rand.New(source),
	}, nil
}

// SelectAction selects an action from the ε-greedy policy
func (p *EGreedy) SelectAction(_ timestep.TimeStep,
	available []int) (int, error) {
	if len(available) == 0 {
		return 0, fmt.Errorf("selectAction: %w", ErrNoActions)
	}

	if p.explore.Rand() == 1.0 {
		return available[p.rng.Intn(len(available))], nil
	}

	state := p.env.State()
	best, bestReward := available[0], math.Inf(-1)
	for _, index := range available {
		a, err := p.env.Action(index)
		if err != nil {
			return 0, fmt.Errorf("selectAction: %w", err)
		}

		r, err := p.env.Reward(state, a, p.env.TimeMatrix())
		if err != nil {
			return 0, fmt.Errorf("selectAction: %w", err)
		}
		if r > bestReward {
			best, bestReward = index, r
		}
	}
	return best, nil
}

// String returns the name of the policy
func (p *EGreedy) String() string {
	return fmt.Sprintf("EGreedy(ε=%v)", p.epsilon)
}
