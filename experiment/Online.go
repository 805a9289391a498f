package experiment

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samuelfneumann/cabdriver/agent"
	env "github.com/samuelfneumann/cabdriver/environment"
	"github.com/samuelfneumann/cabdriver/experiment/tracker"
	ts "github.com/samuelfneumann/cabdriver/timestep"
	"gonum.org/v1/gonum/mat"
)

// ErrActionBounds is returned when a policy selects an action outside
// the environment's action specification
var ErrActionBounds = errors.New("experiment: action outside action spec")

// Online is an Experiment that runs a policy online only. At each
// step, the policy selects among the actions the environment makes
// available in the current state.
type Online struct {
	env.Environment
	agent.Policy
	actions      env.Spec
	maxSteps     uint
	currentSteps uint
	trackers     []tracker.Tracker
	logger       zerolog.Logger
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given policy. The steps parameter determines how
// many timesteps the experiment is run for, and the t parameter
// is a slice of tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, p agent.Policy, steps uint,
	logger zerolog.Logger, t ...tracker.Tracker) *Online {
	return &Online{
		Environment: e,
		Policy:      p,
		actions:     e.ActionSpec(),
		maxSteps:    steps,
		trackers:    t,
		logger:      logger,
	}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment and returns
// whether the maximum number of steps has been reached
func (o *Online) RunEpisode() (bool, error) {
	step, err := o.Environment.Reset()
	if err != nil {
		return false, fmt.Errorf("runEpisode: %w", err)
	}
	o.track(step)

	episodeReturn := 0.0
	for !step.Last() && o.currentSteps < o.maxSteps {
		o.currentSteps++

		available, err := o.Environment.Available()
		if err != nil {
			return false, fmt.Errorf("runEpisode: %w", err)
		}

		action, err := o.Policy.SelectAction(step, available)
		if err != nil {
			return false, fmt.Errorf("runEpisode: %w", err)
		}
		if !o.actions.Contains(mat.NewVecDense(1, []float64{float64(action)})) {
			return false, fmt.Errorf("runEpisode: action %d: %v: %w", action,
				o.actions, ErrActionBounds)
		}

		step, _, err = o.Environment.Step(action)
		if err != nil {
			return false, fmt.Errorf("runEpisode: %w", err)
		}
		episodeReturn += step.Reward

		o.track(step)
	}

	o.logger.Debug().
		Int("steps", step.Number).
		Int("hours", step.Hours).
		Float64("return", episodeReturn).
		Bool("finished", step.Last()).
		Msg("episode complete")

	return o.currentSteps >= o.maxSteps, nil
}

// Run runs the entire experiment for all timesteps
func (o *Online) Run() error {
	o.logger.Info().
		Stringer("actions", o.actions).
		Stringer("observations", o.Environment.ObservationSpec()).
		Stringer("rewards", o.Environment.RewardSpec()).
		Stringer("discounts", o.Environment.DiscountSpec()).
		Uint("steps", o.maxSteps).
		Msg("running online experiment")

	for ended := false; !ended; {
		var err error
		if ended, err = o.RunEpisode(); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// Steps returns the number of steps taken so far
func (o *Online) Steps() uint {
	return o.currentSteps
}

// track tracks the current timestep by caching its data in each Tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tr := range o.trackers {
		tr.Track(t)
	}
}
