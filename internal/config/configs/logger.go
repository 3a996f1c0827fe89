package configs

import (
	"log/slog"
	"strings"
)

// Logger selects the slog level and handler. Unknown values fall back to
// info and text.
type Logger struct {
	Level  string `env:"LEVEL" envDefault:"info"`
	Format string `env:"FORMAT" envDefault:"text"`
}

var slogLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
	"err":     slog.LevelError,
}

func (c Logger) SlogLevel() slog.Level {
	if lvl, ok := slogLevels[strings.ToLower(strings.TrimSpace(c.Level))]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// SlogFormat returns "json" or "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}
