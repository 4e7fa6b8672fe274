package logx

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/pluqqy/pagetabs/pkg/models"
	"pkt.systems/pslog"
)

// Ctx returns the logger bound to the provided context.
func Ctx(ctx context.Context) pslog.Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	return pslog.Ctx(ctx)
}

// WithPage annotates the logger with page identifiers when available.
func WithPage(log pslog.Logger, page models.Page) pslog.Logger {
	if page.ID != "" {
		log = log.With("page", page.ID)
	}
	if page.Name != "" {
		log = log.With("page_name", page.Name)
	}
	return log
}

// WithSlot annotates the logger with an insertion slot.
func WithSlot(log pslog.Logger, slot int) pslog.Logger {
	if slot < 0 {
		return log
	}
	return log.With("slot", slot)
}

// ParseLevel maps a settings level name to a pslog level. Unknown names fall
// back to info.
func ParseLevel(name string) pslog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return pslog.TraceLevel
	case "debug":
		return pslog.DebugLevel
	case "warn", "warning":
		return pslog.WarnLevel
	case "error":
		return pslog.ErrorLevel
	default:
		return pslog.InfoLevel
	}
}

// NewFileLogger returns a structured logger writing to path, or a logger that
// discards everything when path is empty. The returned closer must be closed
// on shutdown.
func NewFileLogger(path, level string) (pslog.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = nopCloser{}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closer = f
	}
	logger := pslog.NewWithOptions(w, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: ParseLevel(level),
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
