// Package experiment implements functionality for running an experiment
package experiment

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samuelfneumann/cabdriver/agent"
	"github.com/samuelfneumann/cabdriver/agent/policy"
	"github.com/samuelfneumann/cabdriver/environment/envconfig"
	"github.com/samuelfneumann/cabdriver/experiment/tracker"
)

// Experiment outlines structs that can run experiments. Experiments
// send each TimeStep to their Trackers, which cache the data they
// track in RAM to be later saved to disk by Save. Run runs episodes
// until the maximum timestep limit is reached. RunEpisode runs a
// single episode.
type Experiment interface {
	Run() error
	RunEpisode() (bool, error) // Returns whether the step limit was reached

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment
	Register(t tracker.Tracker)
}

// Type is the type of an experiment
type Type string

const (
	OnlineExp Type = "OnlineExperiment"
)

// PolicyName names a baseline policy
type PolicyName string

// Policies available for configuration
const (
	Random  PolicyName = "random"
	Idle    PolicyName = "idle"
	EGreedy PolicyName = "greedy"
)

// Config represents a configuration of an experiment.
type Config struct {
	Type     Type             `yaml:"type" json:"type"`
	MaxSteps uint             `yaml:"max_steps" json:"max_steps"`
	EnvConf  envconfig.Config `yaml:"env" json:"env"`
	Policy   PolicyName       `yaml:"policy" json:"policy"`
	Epsilon  float64          `yaml:"epsilon" json:"epsilon"`
}

// CreateExp returns the experiment described by the Config
func (c Config) CreateExp(seed uint64, logger zerolog.Logger,
	t ...tracker.Tracker) (Experiment, error) {
	e, _, err := c.EnvConf.Create(seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create "+
			"environment: %w", err)
	}

	var p agent.Policy
	switch c.Policy {
	case Random:
		p = policy.NewRandom(seed)
	case Idle:
		p = policy.NewIdle()
	case EGreedy:
		if p, err = policy.NewEGreedy(c.Epsilon, e, seed); err != nil {
			return nil, fmt.Errorf("createExp: %w", err)
		}
	default:
		return nil, fmt.Errorf("createExp: no such policy %v", c.Policy)
	}

	switch c.Type {
	case OnlineExp:
		return NewOnline(e, p, c.MaxSteps, logger, t...), nil
	}

	return nil, fmt.Errorf("createExp: no such experiment type %v", c.Type)
}
