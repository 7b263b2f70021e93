package app

import (
	"io"
	"os"
)

// DefaultLogLevel is used when Config.LogLevel is empty.
const DefaultLogLevel = "warn"

// Config holds runtime wiring options for building the app.
type Config struct {
	In       io.Reader // operand source when none are given as arguments; defaults to os.Stdin
	Out      io.Writer // results; defaults to os.Stdout
	Err      io.Writer // log output; defaults to os.Stderr
	LogLevel string    // zerolog level name, e.g. "debug", "warn"
	NoColor  bool      // disable ANSI colours in log output
}

func (c Config) withDefaults() Config {
	if c.In == nil {
		c.In = os.Stdin
	}
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if c.Err == nil {
		c.Err = os.Stderr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	return c
}
