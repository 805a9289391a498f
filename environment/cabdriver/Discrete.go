package cabdriver

import (
	"fmt"

	"github.com/samuelfneumann/cabdriver/environment"
	"github.com/samuelfneumann/cabdriver/environment/cabdriver/timematrix"
	ts "github.com/samuelfneumann/cabdriver/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Discrete wraps a CabDriver so that it can be stepped through
// episodes by an agent, implementing the environment.Environment
// interface. Actions are indices into the action space and
// observations are one-hot state encodings.
//
// Discrete owns the time matrix used for every step and the running
// count of hours elapsed in the current episode. Episodes end once the
// configured number of episode hours has elapsed, or once the
// configured number of decisions has been taken if that is positive.
type Discrete struct {
	*CabDriver
	timeMatrix *timematrix.TimeMatrix
	enders     []environment.Ender

	currentStep ts.TimeStep
}

// NewDiscrete returns a new Discrete cab driver environment configured
// by c and using tm for travel times, along with the first TimeStep of
// the first episode
func NewDiscrete(c Config, tm *timematrix.TimeMatrix,
	seed uint64) (*Discrete, ts.TimeStep, error) {
	if err := tm.Validate(c.Locations, c.HoursPerDay,
		c.DaysPerWeek); err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newDiscrete: %w", err)
	}

	cab, err := New(c, seed)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newDiscrete: %w", err)
	}

	enders := []environment.Ender{environment.NewHourLimit(c.EpisodeHours)}
	if c.EpisodeSteps > 0 {
		enders = append(enders, environment.NewStepLimit(c.EpisodeSteps))
	}

	d := &Discrete{
		CabDriver:  cab,
		timeMatrix: tm,
		enders:     enders,
	}

	step, err := d.firstStep()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("newDiscrete: %w", err)
	}
	return d, step, nil
}

// Reset starts a new episode from a random state and returns its
// first TimeStep
func (d *Discrete) Reset() (ts.TimeStep, error) {
	d.CabDriver.Reset()
	return d.firstStep()
}

func (d *Discrete) firstStep() (ts.TimeStep, error) {
	obs, err := d.Encode(d.state)
	if err != nil {
		return ts.TimeStep{}, err
	}

	d.currentStep = ts.New(ts.First, 0, d.config.Discount, obs, 0, 0)
	return d.currentStep, nil
}

// Available returns the action space indices of the ride requests
// available in the current state, always including the idle action
func (d *Discrete) Available() ([]int, error) {
	indices, _, err := d.Requests(d.state)
	return indices, err
}

// Step takes the action at index action of the action space and
// returns the next TimeStep and whether the episode has ended
func (d *Discrete) Step(action int) (ts.TimeStep, bool, error) {
	a, err := d.Action(action)
	if err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w", err)
	}

	t, err := d.NextState(d.state, a, d.timeMatrix)
	if err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w", err)
	}

	obs, err := d.Encode(t.Next)
	if err != nil {
		return ts.TimeStep{}, false, fmt.Errorf("step: %w", err)
	}

	nextStep := ts.New(ts.Mid, d.reward(t), d.config.Discount, obs,
		d.currentStep.Number+1, d.currentStep.Hours+t.Hours())
	last := d.end(&nextStep)

	d.state = t.Next
	d.currentStep = nextStep

	return nextStep, last, nil
}

// end determines whether t is the last TimeStep of the episode,
// adjusting its StepType and EndType if so
func (d *Discrete) end(t *ts.TimeStep) bool {
	for _, e := range d.enders {
		if e.End(t) {
			return true
		}
	}
	return false
}

// CurrentTimeStep returns the most recent TimeStep of the environment
func (d *Discrete) CurrentTimeStep() ts.TimeStep {
	return d.currentStep
}

// TimeMatrix returns the time matrix used for travel times
func (d *Discrete) TimeMatrix() *timematrix.TimeMatrix {
	return d.timeMatrix
}

// ActionSpec returns the action specification of the environment
func (d *Discrete) ActionSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{0})
	upperBound := mat.NewVecDense(1, []float64{float64(len(d.actions) - 1)})

	return environment.NewSpec(shape, environment.Action, lowerBound,
		upperBound)
}

// ObservationSpec returns the observation specification of the
// environment
func (d *Discrete) ObservationSpec() environment.Spec {
	features := d.config.Features()
	shape := mat.NewVecDense(features, nil)
	lowerBound := mat.NewVecDense(features, nil)

	ones := make([]float64, features)
	for i := range ones {
		ones[i] = 1.0
	}
	upperBound := mat.NewVecDense(features, ones)

	return environment.NewSpec(shape, environment.Observation, lowerBound,
		upperBound)
}

// RewardSpec returns the reward specification of the environment. The
// bounds are derived from the shortest and longest travel times in the
// time matrix and need not be attained.
func (d *Discrete) RewardSpec() environment.Spec {
	r, c := d.config.Revenue, d.config.Cost
	shortest, longest := d.timeMatrix.Min(), d.timeMatrix.Max()

	rewards := []float64{
		-c,                         // idle
		(r-c)*shortest - c*longest, // short ride after a long transit
		(r-c)*longest - c*longest,  // long ride after a long transit
		(r - c) * shortest,         // short direct ride
		(r - c) * longest,          // long direct ride
	}

	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{floats.Min(rewards)})
	upperBound := mat.NewVecDense(1, []float64{floats.Max(rewards)})

	return environment.NewSpec(shape, environment.Reward, lowerBound,
		upperBound)
}

// DiscountSpec returns the discounting specification of the environment
func (d *Discrete) DiscountSpec() environment.Spec {
	shape := mat.NewVecDense(1, nil)
	lowerBound := mat.NewVecDense(1, []float64{d.config.Discount})
	upperBound := mat.NewVecDense(1, []float64{d.config.Discount})

	return environment.NewSpec(shape, environment.Discount, lowerBound,
		upperBound)
}

// String returns a string representation of the environment
func (d *Discrete) String() string {
	str := "Cab Driver  |  State: %v  |  Step: %d  |  Hours: %d"
	return fmt.Sprintf(str, d.state, d.currentStep.Number,
		d.currentStep.Hours)
}
