package logger_test

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-textcleaner/internal/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "trace", want: zerolog.TraceLevel},
		{in: "DEBUG", want: zerolog.DebugLevel},
		{in: "info", want: zerolog.InfoLevel},
		{in: "warn", want: zerolog.WarnLevel},
		{in: " warning ", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "off", want: zerolog.Disabled},
		{in: "", want: zerolog.InfoLevel},
		{in: "nonsense", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	for _, lvl := range []string{"trace", "Debug", " info ", "warn", "warning", "error", "off", "disabled"} {
		assert.True(t, logger.ValidLevel(lvl), lvl)
	}
	for _, lvl := range []string{"", "loud", "fatal"} {
		assert.False(t, logger.ValidLevel(lvl), lvl)
	}
}

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, logger.IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, logger.IsTerminal(f))
}

func TestNewConsoleColor(t *testing.T) {
	t.Parallel()

	colored := &bytes.Buffer{}
	coloredLog := logger.New(logger.Options{Format: "console", Writer: colored})
	coloredLog.Info().Msg("hello")
	assert.Contains(t, colored.String(), "\x1b[")

	plain := &bytes.Buffer{}
	plainLog := logger.New(logger.Options{Format: "console", Writer: plain, NoColor: true})
	plainLog.Info().Msg("hello")
	assert.NotContains(t, plain.String(), "\x1b[")
	assert.Contains(t, plain.String(), "hello")
}

func TestValidFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.ValidFormat("console"))
	assert.True(t, logger.ValidFormat("JSON"))
	assert.False(t, logger.ValidFormat("xml"))
}

func TestNewJSON(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.Options{Level: "info", Format: "json", Writer: buf})

	log.Debug().Msg("hidden")
	log.Info().Str("step", "LOWERCASE").Msg("visible")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["message"])
	assert.Equal(t, "LOWERCASE", entry["step"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNewConsole(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.Options{Level: "debug", Format: "console", Writer: buf, NoColor: true})

	log.Debug().Int("lines", 3).Msg("batch finished")

	out := buf.String()
	assert.Contains(t, out, "batch finished")
	assert.Contains(t, out, "lines=3")
	assert.Contains(t, out, "DBG")
}

func TestNewStack(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.Options{Format: "json", Writer: buf})

	log.Error().Stack().Err(errors.New("boom")).Msg("failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "boom", entry["error"])
	assert.Contains(t, entry, "stack")
}
