package builder

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/systematics/internal/domain"
)

// BuildEvent summarises one construction pass.
type BuildEvent struct {
	SessionID string
	Kind      string
	Arity     domain.Arity
	Prompts   int
	Rejected  int
	Defaulted int
	Overrides int
	Cleared   bool
	Duration  time.Duration
	StartedAt time.Time
	Err       error
}

// Observer receives build events.
type Observer interface {
	ObserveBuild(ctx context.Context, event BuildEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveBuild(context.Context, BuildEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes build events to logger.
func NewLogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) ObserveBuild(ctx context.Context, event BuildEvent) {
	attrs := []any{
		"session_id", event.SessionID,
		"kind", event.Kind,
		"arity", int(event.Arity),
		"prompts", event.Prompts,
		"rejected", event.Rejected,
		"defaulted", event.Defaulted,
		"overrides", event.Overrides,
		"cleared", event.Cleared,
		"duration_ms", event.Duration.Milliseconds(),
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "build", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "build", attrs...)
}
