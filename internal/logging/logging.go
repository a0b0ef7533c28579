// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alexanderramin/systematics/internal/config"
	slogmulti "github.com/samber/slog-multi"
)

// New returns a logger writing to w and, when cfg.LogFile is set, also to
// that file. The returned close func releases the file.
func New(cfg config.Config, w io.Writer) (*slog.Logger, func() error, error) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	handlers := []slog.Handler{newHandler(w, cfg.LogJSON, opts)}
	closeFn := func() error { return nil }

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		// The file always records info and above, whatever the console level.
		fileOpts := &slog.HandlerOptions{Level: min(cfg.LogLevel, slog.LevelInfo)}
		handlers = append(handlers, newHandler(f, cfg.LogJSON, fileOpts))
		closeFn = f.Close
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0]), closeFn, nil
	}
	return slog.New(slogmulti.Fanout(handlers...)), closeFn, nil
}

func newHandler(w io.Writer, asJSON bool, opts *slog.HandlerOptions) slog.Handler {
	if asJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
