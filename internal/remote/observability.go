package remote

import (
	"io"
	"log/slog"
)

// CallEvent records metadata about a single API call, including retries.
type CallEvent struct {
	Op        string
	CareerID  string
	LatencyMs int64
	Attempts  int
	Success   bool
	ErrorCode string
}

// Observer receives events about API calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes API call events as structured log lines.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{logger: slog.New(slog.NewTextHandler(w, nil))}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"op", event.Op,
		"latency_ms", event.LatencyMs,
		"attempts", event.Attempts,
		"success", event.Success,
	}
	if event.CareerID != "" {
		attrs = append(attrs, "career_id", event.CareerID)
	}
	if !event.Success {
		attrs = append(attrs, "error_code", event.ErrorCode)
		o.logger.Warn("catalog_api_call", attrs...)
		return
	}
	o.logger.Info("catalog_api_call", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
