package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"fatal", zerolog.FatalLevel},
		{"bogus", zerolog.WarnLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  "info",
		Format: FormatJSON,
		Output: &buf,
		Fields: map[string]string{"session": "abc"},
	})

	logger.Debug().Msg("hidden")
	logger.Info().Str("path", "library.txt").Msg("library saved")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "library saved", line["message"])
	assert.Equal(t, "abc", line["session"])
	assert.Equal(t, "library.txt", line["path"])
	assert.Equal(t, "info", line["level"])
}

func TestAutoFormatOnNonTerminalIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: FormatAuto, Output: &buf})
	logger.Warn().Msg("library file is corrupted")

	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "got %q", buf.String())
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: FormatConsole, Output: &buf})
	logger.Warn().Msg("library file is corrupted")

	assert.Contains(t, buf.String(), "library file is corrupted")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestDefaultConfigIsQuietJSONOffTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	cfg := DefaultConfig()
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, FormatAuto, cfg.Format)
	assert.True(t, cfg.NoColor)

	var buf bytes.Buffer
	cfg.Output = &buf
	logger := New(cfg)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "shown", entry["message"])
}
