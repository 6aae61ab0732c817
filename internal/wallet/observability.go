package wallet

import (
	"io"
	"log/slog"
)

// CallEvent records metadata about a single provider call.
type CallEvent struct {
	Method    Method
	RequestID string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about provider calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events through a slog text handler.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		"method", string(event.Method),
		"request_id", event.RequestID,
		"latency_ms", event.LatencyMs,
	}
	if !event.Success {
		o.logger.Warn("wallet_call", append(attrs, "status", "err:"+event.ErrorCode)...)
		return
	}
	o.logger.Info("wallet_call", append(attrs, "status", "ok")...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
