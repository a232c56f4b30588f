// Package logger builds the zerolog logger used by the command line.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures the logger.
type Options struct {
	Level  string
	Format string
	// Writer defaults to os.Stderr.
	Writer io.Writer
	// NoColor disables ANSI colours in the console format, see IsTerminal.
	NoColor bool
}

var setGlobals sync.Once

// New returns a logger writing to opts.Writer, human readable for the console format and JSON otherwise.
func New(opts Options) zerolog.Logger {
	setGlobals.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano
	})

	var w io.Writer = os.Stderr
	if opts.Writer != nil {
		w = opts.Writer
	}
	if strings.EqualFold(strings.TrimSpace(opts.Format), FormatConsole) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opts.NoColor}
	}

	return zerolog.New(w).Level(ParseLevel(opts.Level)).With().Timestamp().Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back to info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// ValidLevel reports whether s names a level ParseLevel knows, rather than one it falls back from.
func ValidLevel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
		return true
	default:
		return false
	}
}

// IsTerminal reports whether w is a terminal, in which case console output can be coloured.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ValidFormat reports whether format is one New understands.
func ValidFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatConsole, FormatJSON:
		return true
	default:
		return false
	}
}
