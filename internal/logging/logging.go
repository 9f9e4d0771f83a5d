// Package logging configures the global zerolog logger for the CLI.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup sends the global logger to w. Warnings and errors are shown by
// default, verbose adds debug output and quiet silences everything.
func Setup(w io.Writer, verbose, quiet bool) {
	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if quiet {
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	log.Logger = log.Output(output).With().Timestamp().Logger()
}
