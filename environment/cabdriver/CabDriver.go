// Package cabdriver implements the cab driver environment, in which a
// ride-hailing driver decides which ride request to accept each time
// the driver becomes free.
//
// States are (location, hour of day, day of week) triples. Locations
// are numbered from 1, hours and days from 0. Actions are either Idle,
// which waits one hour at the current location, or an ordered pair of
// distinct locations (pickup, drop). If the pickup location differs
// from the driver's current location, the driver first drives to the
// pickup location without a passenger.
//
// Each hour a location receives a Poisson distributed number of ride
// requests, with a mean depending on the location. The driver may
// choose among the sampled requests or idle. Rewards are the revenue
// for the hours spent driving a passenger minus the operating cost of
// all hours spent, including waiting and driving to the pickup.
//
// Travel times come from a timematrix.TimeMatrix supplied by the
// caller, which the environment only reads.
package cabdriver

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// CabDriver implements the cab driver MDP. It holds the action space,
// the state space, and the current state of the driver.
//
// A CabDriver is not safe for concurrent use: its random source and
// current state belong to a single episode at a time.
type CabDriver struct {
	config Config

	actions []Action
	states  []State
	index   map[Action]int

	source   rand.Source
	starter  environment.Starter
	requests []distuv.Poisson // one request distribution per location

	state State
}

// New returns a new CabDriver configured by c. All randomness, the
// starting states and the ride requests, is drawn from a single source
// seeded with seed.
func New(c Config, seed uint64) (*CabDriver, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	// Copy the request means so later changes to the caller's slice
	// cannot alter the environment
	means := make([]float64, len(c.RequestMeans))
	copy(means, c.RequestMeans)
	c.RequestMeans = means

	source := rand.NewSource(seed)

	actions := actionSpace(c.Locations)
	index := make(map[Action]int, len(actions))
	for i, a := range actions {
		index[a] = i
	}

	requests := make([]distuv.Poisson, c.Locations)
	for i := range requests {
		requests[i] = distuv.Poisson{Lambda: c.RequestMeans[i], Src: source}
	}

	states := stateSpace(c.Locations, c.HoursPerDay, c.DaysPerWeek)

	cab := &CabDriver{
		config:   c,
		actions:  actions,
		states:   states,
		index:    index,
		source:   source,
		starter:  environment.NewCategoricalStarter(len(states), source),
		requests: requests,
	}
	cab.state = cab.states[cab.starter.Start()]

	return cab, nil
}

// actionSpace returns Idle followed by all ordered pairs of distinct
// locations in (1, 2, ... locations), in lexicographic order
func actionSpace(locations int) []Action {
	actions := make([]Action, 0, 1+locations*(locations-1))
	actions = append(actions, Idle)

	for pickup := 1; pickup <= locations; pickup++ {
		for drop := 1; drop <= locations; drop++ {
			if pickup != drop {
				actions = append(actions, Action{pickup, drop})
			}
		}
	}
	return actions
}

// stateSpace returns all (location, hour, day) states ordered by
// location, then hour, then day
func stateSpace(locations, hours, days int) []State {
	states := make([]State, 0, locations*hours*days)

	for l := 1; l <= locations; l++ {
		for h := 0; h < hours; h++ {
			for d := 0; d < days; d++ {
				states = append(states, State{l, h, d})
			}
		}
	}
	return states
}

// Config returns the configuration of the environment
func (c *CabDriver) Config() Config {
	config := c.config
	config.RequestMeans = make([]float64, len(c.config.RequestMeans))
	copy(config.RequestMeans, c.config.RequestMeans)
	return config
}

// ActionSpace returns a copy of the action space. Index 0 is Idle.
func (c *CabDriver) ActionSpace() []Action {
	actions := make([]Action, len(c.actions))
	copy(actions, c.actions)
	return actions
}

// StateSpace returns a copy of the state space
func (c *CabDriver) StateSpace() []State {
	states := make([]State, len(c.states))
	copy(states, c.states)
	return states
}

// Action returns the action at index i of the action space
func (c *CabDriver) Action(i int) (Action, error) {
	if i < 0 || i >= len(c.actions) {
		return Action{}, fmt.Errorf("action: index %d ∉ [0, %d]: %w", i,
			len(c.actions)-1, ErrInvalidAction)
	}
	return c.actions[i], nil
}

// ActionIndex returns the index of a in the action space and whether
// a is in the action space
func (c *CabDriver) ActionIndex(a Action) (int, bool) {
	i, ok := c.index[a]
	return i, ok
}

// State returns the current state of the driver
func (c *CabDriver) State() State {
	return c.state
}

// Reset draws a new current state uniformly at random from the state
// space and returns the action space, the state space, and the new
// current state
func (c *CabDriver) Reset() ([]Action, []State, State) {
	c.state = c.states[c.starter.Start()]
	return c.ActionSpace(), c.StateSpace(), c.state
}

// Encode returns the one-hot encoding of state s, a vector of length
// locations + hours + days. The location occupies the first segment,
// the hour the second, and the day the third.
func (c *CabDriver) Encode(s State) (*mat.VecDense, error) {
	if err := c.config.validState(s); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	m, t := c.config.Locations, c.config.HoursPerDay
	encoded := mat.NewVecDense(c.config.Features(), nil)
	encoded.SetVec(s.Location-1, 1.0)
	encoded.SetVec(m+s.Hour, 1.0)
	encoded.SetVec(m+t+s.Day, 1.0)

	return encoded, nil
}

// Decode returns the state whose one-hot encoding is v
func (c *CabDriver) Decode(v mat.Vector) (State, error) {
	if v.Len() != c.config.Features() {
		return State{}, fmt.Errorf("decode: vector length %d != %d: %w",
			v.Len(), c.config.Features(), ErrInvalidState)
	}

	m, t, d := c.config.Locations, c.config.HoursPerDay, c.config.DaysPerWeek
	location, lok := hot(v, 0, m)
	hour, hok := hot(v, m, t)
	day, dok := hot(v, m+t, d)
	if !lok || !hok || !dok {
		return State{}, fmt.Errorf("decode: vector is not a one-hot "+
			"state encoding: %w", ErrInvalidState)
	}

	return State{location + 1, hour, day}, nil
}

// hot returns the offset of the single 1.0 entry in the segment of v
// starting at start with length n, and whether there is exactly one
// such entry with all others 0
func hot(v mat.Vector, start, n int) (int, bool) {
	index := -1
	for i := 0; i < n; i++ {
		switch v.AtVec(start + i) {
		case 0.0:
		case 1.0:
			if index >= 0 {
				return -1, false
			}
			index = i
		default:
			return -1, false
		}
	}
	return index, index >= 0
}

// String returns a string representation of the environment
func (c *CabDriver) String() string {
	str := "Cab Driver  |  Locations: %d  |  State: %v"
	return fmt.Sprintf(str, c.config.Locations, c.state)
}
