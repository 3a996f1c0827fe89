package configs

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevelAndFormat(t *testing.T) {
	cases := []struct {
		cfg    Logger
		level  slog.Level
		format string
	}{
		{Logger{Level: "DEBUG", Format: "JSON"}, slog.LevelDebug, "json"},
		{Logger{Level: "warning", Format: "text"}, slog.LevelWarn, "text"},
		{Logger{Level: "loud", Format: "xml"}, slog.LevelInfo, "text"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, tc.cfg.SlogLevel(), tc.cfg.Level)
		assert.Equal(t, tc.format, tc.cfg.SlogFormat(), tc.cfg.Format)
	}
}
