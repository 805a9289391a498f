// Command cabdriver runs baseline policies on the cab driver
// environment and manages travel time matrices
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/cabdriver/utils/logging"
)

var (
	logger   zerolog.Logger
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "cabdriver",
	Short: "Cab driver decision environment",
	Long: "cabdriver simulates a ride-hailing driver choosing ride " +
		"requests over a grid of locations, hours, and days.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.Setup(logLevel)
		if err != nil {
			return fmt.Errorf("setup logging: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")

	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newTimeMatrixCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
