package calendar

import (
	"io"
	"log/slog"
)

// FetchEvent records metadata about one calendar fetch, successful or not.
type FetchEvent struct {
	CalendarID string
	Attempts   int
	LatencyMs  int64
	Success    bool
	Category   ErrorCategory
	EventCount int
}

// Observer receives calendar client events for logging and metrics.
type Observer interface {
	OnFetchComplete(event FetchEvent)
	OnEventSkipped(summary, reason string)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnFetchComplete(FetchEvent)   {}
func (NoopObserver) OnEventSkipped(string, string) {}

// LogObserver writes calendar client events to a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *LogObserver) OnFetchComplete(event FetchEvent) {
	attrs := []any{
		"calendar_id", event.CalendarID,
		"attempts", event.Attempts,
		"latency_ms", event.LatencyMs,
		"success", event.Success,
	}
	if event.Success {
		attrs = append(attrs, "events", event.EventCount)
		o.logger.Info("calendar_fetch", attrs...)
		return
	}
	attrs = append(attrs, "category", string(event.Category))
	o.logger.Error("calendar_fetch", attrs...)
}

func (o *LogObserver) OnEventSkipped(summary, reason string) {
	o.logger.Warn("calendar_event_skipped", "summary", summary, "reason", reason)
}
