package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pretty/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level along with the elapsed time, rounded to the
// millisecond. Example output: "Formatted input.json (12ms)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Render Hooks
// =============================================================================

// renderHooks logs layout statistics for every render at debug level.
type renderHooks struct {
	logger *log.Logger
}

// NewRenderHooks returns render hooks that report to l.
func NewRenderHooks(l *log.Logger) observability.RenderHooks {
	return &renderHooks{logger: l}
}

func (h *renderHooks) OnRenderStart(width int) {
	h.logger.Debug("render started", "width", width)
}

func (h *renderHooks) OnRenderComplete(width int, s observability.Stats, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "width", width, "err", err)
		return
	}
	h.logger.Debug("render complete",
		"width", width,
		"lines", s.Lines,
		"flat", s.FlatGroups,
		"broken", s.BrokenGroups,
		"rebreaks", s.Rebreaks,
		"annotations", s.Annotations,
		"depth", s.PeakDepth,
		"elapsed", d.Round(time.Microsecond),
	)
}
