// Package log configures the process-wide structured logger.
package log

import (
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Init directs the default slog logger to a rotating log file. The TUI owns
// the terminal, so nothing is ever logged to stderr while the timer runs.
func Init(path string) {
	level := slog.LevelInfo
	if os.Getenv("POMO_DEBUG") != "" {
		level = slog.LevelDebug
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		Compress:   true,
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler))
}
