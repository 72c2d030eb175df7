package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// SetupPrettySlog returns a human-readable slog logger for local runs.
// Dev/prod environments use the plain JSON handler instead.
func SetupPrettySlog() *slog.Logger {
	return slog.New(NewPrettyHandler(slog.LevelDebug))
}

type PrettyHandler struct {
	level slog.Level
	attrs []slog.Attr
	mu    *sync.Mutex
}

func NewPrettyHandler(level slog.Level) *PrettyHandler {
	return &PrettyHandler{level: level, mu: &sync.Mutex{}}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder

	b.WriteString(r.Time.Format(time.TimeOnly))
	b.WriteString(" ")
	b.WriteString(r.Level.String())
	b.WriteString(" ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value.Any())
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value.Any())
		return true
	})
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := os.Stdout.WriteString(b.String())
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &PrettyHandler{level: h.level, attrs: merged, mu: h.mu}
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return h
}
