package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/cabdriver/environment/envconfig"
	"github.com/samuelfneumann/cabdriver/experiment"
	"github.com/samuelfneumann/cabdriver/experiment/tracker"
)

type simulateOptions struct {
	configPath string
	timeMatrix string
	seed       uint64
	steps      uint
	policy     string
	epsilon    float64
	returns    string
	lengths    string
}

func newSimulateCmd() *cobra.Command {
	var opts simulateOptions

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a baseline policy on the cab driver environment",
		Long: "Run a baseline (non-learning) policy online on the cab " +
			"driver environment and report its episodic returns.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "",
		"environment config file (.yaml or .json), defaults if empty")
	flags.StringVar(&opts.timeMatrix, "time-matrix", "",
		"time matrix .npy file, overrides the config")
	flags.Uint64Var(&opts.seed, "seed", 1, "random seed")
	flags.UintVar(&opts.steps, "steps", 10_000, "number of steps to run")
	flags.StringVar(&opts.policy, "policy", string(experiment.Random),
		"policy to run (random, idle, greedy)")
	flags.Float64Var(&opts.epsilon, "epsilon", 0.1,
		"exploration probability of the greedy policy")
	flags.StringVar(&opts.returns, "returns", "",
		"file to save episodic returns to")
	flags.StringVar(&opts.lengths, "lengths", "",
		"file to save episode lengths to")

	return cmd
}

func runSimulate(opts simulateOptions) error {
	envConf := envconfig.NewConfig()
	if opts.configPath != "" {
		var err error
		if envConf, err = envconfig.Load(opts.configPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if opts.timeMatrix != "" {
		envConf.TimeMatrix = opts.timeMatrix
	}

	c := experiment.Config{
		Type:     experiment.OnlineExp,
		MaxSteps: opts.steps,
		EnvConf:  envConf,
		Policy:   experiment.PolicyName(opts.policy),
		Epsilon:  opts.epsilon,
	}

	returns := tracker.NewReturn(opts.returns)
	lengths := tracker.NewEpisodeLength(opts.lengths)
	exp, err := c.CreateExp(opts.seed, logger, returns, lengths)
	if err != nil {
		return fmt.Errorf("create experiment: %w", err)
	}

	logger.Info().
		Str("policy", opts.policy).
		Uint("steps", opts.steps).
		Uint64("seed", opts.seed).
		Int("locations", envConf.CabDriver.Locations).
		Msg("starting simulation")

	if err := exp.Run(); err != nil {
		return fmt.Errorf("run experiment: %w", err)
	}

	if opts.returns != "" {
		if err := returns.Save(); err != nil {
			return fmt.Errorf("save returns: %w", err)
		}
	}
	if opts.lengths != "" {
		if err := lengths.Save(); err != nil {
			return fmt.Errorf("save lengths: %w", err)
		}
	}

	episodeReturns := returns.Returns()
	if len(episodeReturns) == 0 {
		logger.Warn().Msg("no episode finished, increase --steps")
		return nil
	}

	logger.Info().
		Int("episodes", len(episodeReturns)).
		Float64("mean_return", stat.Mean(episodeReturns, nil)).
		Float64("min_return", floats.Min(episodeReturns)).
		Float64("max_return", floats.Max(episodeReturns)).
		Float64("mean_length", stat.Mean(lengths.Lengths(), nil)).
		Msg("simulation complete")

	return nil
}
