package main

import (
	"os"

	"github.com/rs/zerolog"
)

// newLogger returns a console logger on stderr when verbose mode is on, and a
// no-op logger otherwise. Failure diagnostics never go through here; they stay
// single plain lines on stderr.
func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}
	return zerolog.New(output).With().Timestamp().Logger()
}
