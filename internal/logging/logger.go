package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// Setup настраивает slog по умолчанию: текст в stdout и, если задан файл, JSON в файл.
// Возвращает функцию закрытия файла.
func Setup(level, file string) (func() error, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	if file == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, opts)).With(slog.String("service", "ross")))
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	slog.SetDefault(New(os.Stdout, f, opts))
	return f.Close, nil
}

// New - логгер с fanout в текстовый и JSON обработчики
func New(text, json io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	return slog.New(slogmulti.Fanout(
		slog.NewTextHandler(text, opts),
		slog.NewJSONHandler(json, opts),
	)).With(slog.String("service", "ross"))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
