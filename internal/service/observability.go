package service

import (
	"io"
	"log/slog"
)

// NewLogger builds the slog logger services and the bot share. Level comes
// from configuration; the text handler keeps journald/docker logs greppable.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
