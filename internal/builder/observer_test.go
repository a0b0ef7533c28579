package builder

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/systematics/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLogObserver(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	obs := NewLogObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	obs.ObserveBuild(context.Background(), BuildEvent{
		SessionID: "abc",
		Kind:      "system",
		Arity:     domain.Hexad,
		Prompts:   23,
		Overrides: 2,
		Duration:  1500 * time.Millisecond,
	})
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "session_id=abc")
	assert.Contains(t, out, "arity=6")
	assert.Contains(t, out, "overrides=2")
	assert.Contains(t, out, "duration_ms=1500")

	buf.Reset()
	obs.ObserveBuild(context.Background(), BuildEvent{Kind: "monad", Err: errors.New("boom")})
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNewLogObserver_NilLogger(t *testing.T) {
	t.Parallel()
	assert.Equal(t, NoopObserver{}, NewLogObserver(nil))
}
