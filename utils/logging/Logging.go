// Package logging configures zerolog for command line tools
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures zerolog for the process, writing human-readable
// output to stderr at the argument level (e.g. "debug", "info")
func Setup(level string) (zerolog.Logger, error) {
	return SetupWithWriter(level, os.Stderr)
}

// SetupWithWriter configures zerolog to write human-readable output to
// w at the argument level
func SetupWithWriter(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("setup: %v", err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	writer := zerolog.ConsoleWriter{Out: w, NoColor: true}

	logger := zerolog.New(writer).With().Timestamp().Logger().Level(lvl)
	log.Logger = logger
	return logger, nil
}
