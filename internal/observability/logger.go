package observability

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	// LogFieldRunID is the field name for run ID.
	LogFieldRunID = "run_id"
	// LogFieldCommand is the field name for the command being run.
	LogFieldCommand = "command"
	// LogFieldDuration is the field name for duration in milliseconds.
	LogFieldDuration = "duration_ms"
	// LogFieldRecords is the field name for a record count.
	LogFieldRecords = "records"
	// LogFieldErrorCode is the field name for error code.
	LogFieldErrorCode = "error_code"
	// LogFieldExpressionKind is the field name for a classified expression kind.
	LogFieldExpressionKind = "expression_kind"
	// LogFieldDegraded is the field name for the degraded-resolution flag.
	LogFieldDegraded = "degraded"
)

// NewLogger builds the process logger: text in dev mode, JSON otherwise.
func NewLogger(w io.Writer, mode string, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if mode == "dev" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// RunContext represents one CLI invocation or batch run with structured logging.
type RunContext struct {
	RunID     string
	Command   string
	StartTime time.Time
	Logger    *slog.Logger
}

// NewRunContext creates a new run context with a generated run ID.
func NewRunContext(logger *slog.Logger, command string) *RunContext {
	return NewRunContextWithID(logger, uuid.New().String(), command)
}

// NewRunContextWithID creates a new run context with a specific run ID.
func NewRunContextWithID(logger *slog.Logger, runID, command string) *RunContext {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &RunContext{
		RunID:     runID,
		Command:   command,
		StartTime: time.Now(),
		Logger:    logger,
	}
}

// WithFields returns a new logger with the run fields and additional fields.
func (r *RunContext) WithFields(attrs ...slog.Attr) *slog.Logger {
	combined := r.baseAttrsAppended(attrs...)
	args := make([]any, 0, len(combined))
	for _, attr := range combined {
		args = append(args, attr)
	}
	return r.Logger.With(args...)
}

// Info logs an info message.
func (r *RunContext) Info(msg string, attrs ...slog.Attr) {
	r.Logger.LogAttrs(context.Background(), slog.LevelInfo, msg, r.baseAttrsAppended(attrs...)...)
}

// Debug logs a debug message.
func (r *RunContext) Debug(msg string, attrs ...slog.Attr) {
	r.Logger.LogAttrs(context.Background(), slog.LevelDebug, msg, r.baseAttrsAppended(attrs...)...)
}

// Warn logs a warning message.
func (r *RunContext) Warn(msg string, attrs ...slog.Attr) {
	r.Logger.LogAttrs(context.Background(), slog.LevelWarn, msg, r.baseAttrsAppended(attrs...)...)
}

// Error logs an error message with the error.
func (r *RunContext) Error(msg string, err error, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("error", err.Error()))
	r.Logger.LogAttrs(context.Background(), slog.LevelError, msg, r.baseAttrsAppended(attrs...)...)
}

// Duration returns the elapsed time since the run started.
func (r *RunContext) Duration() time.Duration {
	return time.Since(r.StartTime)
}

// DurationMs returns the elapsed time in milliseconds.
func (r *RunContext) DurationMs() int64 {
	return r.Duration().Milliseconds()
}

func (r *RunContext) baseAttrsAppended(attrs ...slog.Attr) []slog.Attr {
	base := []slog.Attr{
		slog.String(LogFieldRunID, r.RunID),
		slog.String(LogFieldCommand, r.Command),
	}
	return append(base, attrs...)
}

type ctxKey struct{}

// WithRunContext adds the run context to the context.
func WithRunContext(ctx context.Context, runCtx *RunContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, runCtx)
}

// FromContext extracts the run context from the context.
func FromContext(ctx context.Context) (*RunContext, bool) {
	runCtx, ok := ctx.Value(ctxKey{}).(*RunContext)
	return runCtx, ok
}

// LoggerFrom returns the run logger stored in ctx, or fallback.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if runCtx, ok := FromContext(ctx); ok {
		return runCtx.WithFields()
	}
	return fallback
}
