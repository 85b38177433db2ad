// Package logging builds the zerolog logger used across shelf.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Log output formats.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds logger configuration options.
type Config struct {
	// Level is the minimum level to emit (trace, debug, info, warn, error, disabled).
	Level string

	// Format is auto, console or json. Auto picks console on a terminal.
	Format string

	// NoColor disables colour in console mode.
	NoColor bool

	// Output receives log lines. Defaults to os.Stderr.
	Output io.Writer

	// Fields are added to every log line.
	Fields map[string]string
}

// DefaultConfig returns warn-level auto-format logging to stderr, so that
// routine runs stay quiet.
func DefaultConfig() Config {
	return Config{
		Level:   "warn",
		Format:  FormatAuto,
		NoColor: os.Getenv("NO_COLOR") != "",
		Output:  os.Stderr,
	}
}

// New creates a logger from cfg.
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	logger := zerolog.New(writer(out, cfg)).
		Level(ParseLevel(cfg.Level)).
		With().
		Timestamp().
		Logger()

	if len(cfg.Fields) > 0 {
		ctx := logger.With()
		for k, v := range cfg.Fields {
			ctx = ctx.Str(k, v)
		}
		logger = ctx.Logger()
	}
	return logger
}

// writer wraps out in a console writer when the format asks for one.
func writer(out io.Writer, cfg Config) io.Writer {
	format := strings.ToLower(cfg.Format)
	if format == "" || format == FormatAuto {
		format = FormatJSON
		if IsTerminal(out) {
			format = FormatConsole
		}
	}

	if format == FormatConsole {
		return zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor || !IsTerminal(out),
		}
	}
	return out
}

// IsTerminal reports whether w is a terminal file descriptor.
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ParseLevel parses a log level name. Unknown names fall back to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning", "":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "none", "off":
		return zerolog.Disabled
	default:
		if l, err := zerolog.ParseLevel(level); err == nil {
			return l
		}
		return zerolog.WarnLevel
	}
}
