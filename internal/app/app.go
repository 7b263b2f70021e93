package app

import (
	"io"

	"github.com/rs/zerolog"
)

// App bundles the streams and logger shared by all commands.
type App struct {
	In  io.Reader
	Out io.Writer
	Log zerolog.Logger
}
