package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 14 trees (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// logHooks reports printer and server events through the CLI logger.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) OnLayout(rows, width int, d time.Duration) {
	h.logger.Debug("Layout computed", "rows", rows, "width", width, "took", d)
}

func (h logHooks) OnRender(kind string, trees, lines int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Render failed", "kind", kind, "trees", trees, "err", err)
		return
	}
	h.logger.Debug("Rendered", "kind", kind, "trees", trees, "lines", lines, "took", d)
}

func (h logHooks) OnRequest(ctx context.Context, method, path string) {
	h.logger.Debug("Request", "method", method, "path", path, "id", requestIDFromContext(ctx))
}

func (h logHooks) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("Response", "method", method, "path", path, "status", status,
		"took", d.Round(time.Microsecond), "id", requestIDFromContext(ctx))
}
