package app

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// New constructs the App from cfg.
func New(cfg Config) (*App, error) {
	cfg = cfg.withDefaults()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	// Human-readable logs on the error stream; results stay on Out.
	w := zerolog.ConsoleWriter{
		Out:        cfg.Err,
		NoColor:    cfg.NoColor,
		TimeFormat: time.TimeOnly,
	}
	log := zerolog.New(w).Level(level).With().Timestamp().Logger()

	return &App{
		In:  cfg.In,
		Out: cfg.Out,
		Log: log,
	}, nil
}
