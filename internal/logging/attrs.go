package logging

import (
	"context"
	"log/slog"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldSessionID is the standardized structured logging key for conversion session identifiers.
	FieldSessionID = "session_id"
	// FieldStyle is the standardized structured logging key for icon style names.
	FieldStyle = "style"
	// FieldIcon is the standardized structured logging key for icon names.
	FieldIcon = "icon"
)

// NewNop returns a logger that discards every record.
func NewNop() *slog.Logger {
	return slog.New(noopHandler{})
}

// NewComponentLogger creates a logger with a standardized component attribute.
// If logger is nil, a no-op logger is used as the base.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}

// WithSession returns a logger tagged with the conversion session identifier.
func WithSession(logger *slog.Logger, sessionID string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if sessionID == "" {
		return logger
	}
	return logger.With(slog.String(FieldSessionID, sessionID))
}

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (noopHandler) Handle(context.Context, slog.Record) error { return nil }
func (noopHandler) WithAttrs([]slog.Attr) slog.Handler        { return noopHandler{} }
func (noopHandler) WithGroup(string) slog.Handler             { return noopHandler{} }
