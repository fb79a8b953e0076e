package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Setup configures the global slog logger. Production writes JSON, everything else text.
// level overrides the per-environment default when it names a valid slog level.
func Setup(env, level string) {
	slog.SetDefault(New(os.Stdout, env, level))
	slog.Info("Logger 초기화", "env", env, "level", resolveLevel(env, level).String())
}

func New(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: resolveLevel(env, level)}

	var handler slog.Handler
	if isProduction(env) {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func resolveLevel(env, level string) slog.Level {
	var parsed slog.Level
	if level != "" && parsed.UnmarshalText([]byte(level)) == nil {
		return parsed
	}

	switch strings.ToLower(env) {
	case "local", "dev", "development", "test":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func isProduction(env string) bool {
	env = strings.ToLower(env)
	return env == "prod" || env == "production"
}
