package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/cabdriver/environment/cabdriver"
	"github.com/samuelfneumann/cabdriver/environment/cabdriver/timematrix"
)

func newTimeMatrixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timematrix",
		Short: "Generate and inspect travel time matrices",
	}

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newInspectCmd())
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var (
		out       string
		locations int
		maxHours  int
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random time matrix to a .npy file",
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := timematrix.Random(locations,
				cabdriver.DefaultHoursPerDay, cabdriver.DefaultDaysPerWeek,
				maxHours, rand.NewSource(seed))
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			if err := tm.Save(out); err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			logger.Info().Str("path", out).Stringer("matrix", tm).
				Msg("time matrix written")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&out, "out", "TM.npy", "output .npy file")
	flags.IntVar(&locations, "locations", cabdriver.DefaultLocations,
		"number of locations")
	flags.IntVar(&maxHours, "max-hours", 11, "longest travel time in hours")
	flags.Uint64Var(&seed, "seed", 1, "random seed")

	return cmd
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the shape and travel time range of a .npy time matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tm, err := timematrix.Load(args[0])
			if err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), tm)
			return nil
		},
	}
}
