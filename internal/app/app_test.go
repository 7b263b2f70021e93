package app_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fracpoint/internal/app"
)

func TestNew_Defaults(t *testing.T) {
	a, err := app.New(app.Config{})
	require.NoError(t, err)
	assert.NotNil(t, a.In)
	assert.NotNil(t, a.Out)
	assert.Equal(t, zerolog.WarnLevel, a.Log.GetLevel())
}

func TestNew_LogLevelFilters(t *testing.T) {
	var errBuf bytes.Buffer
	a, err := app.New(app.Config{Err: &errBuf, LogLevel: "info", NoColor: true})
	require.NoError(t, err)

	a.Log.Debug().Msg("hidden")
	a.Log.Info().Str("op", "add").Msg("shown")

	out := errBuf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "op=add")
}

func TestNew_BadLogLevel(t *testing.T) {
	_, err := app.New(app.Config{LogLevel: "loud"})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), `"loud"`), err.Error())
}
