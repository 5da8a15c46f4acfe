// Package logging configures the process-wide slog logger
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
)

// Log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

type requestIDKey struct{}

// WithRequestID stores a request id on ctx
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id stored on ctx, or ""
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Entity groups an entity's type and id under the "entity" key. A nil
// entity yields an empty attr, which handlers drop.
func Entity(e core.Entity) slog.Attr {
	if e == nil {
		return slog.Attr{}
	}
	return slog.Group("entity", slog.String("type", e.GetType()), slog.String("id", e.GetID()))
}

// ParseLevel accepts debug, info, warn and error
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return slog.LevelInfo, errors.InvalidArgumentf("invalid log level: %q", level)
	}
	return l, nil
}

// NewHandler builds a text or JSON handler that adds the request id of the
// record's context
func NewHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(format) {
	case "", FormatText:
		return contextHandler{slog.NewTextHandler(w, opts)}, nil
	case FormatJSON:
		return contextHandler{slog.NewJSONHandler(w, opts)}, nil
	default:
		return nil, errors.InvalidArgumentf("invalid log format: %q", format)
	}
}

// Setup installs the handler as the slog default
func Setup(w io.Writer, format, level string) error {
	l, err := ParseLevel(level)
	if err != nil {
		return err
	}
	h, err := NewHandler(w, format, l)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(h))
	return nil
}

type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := RequestID(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{h.Handler.WithGroup(name)}
}
