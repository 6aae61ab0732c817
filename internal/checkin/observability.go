package checkin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/alexanderramin/yeardots/internal/wallet"
)

// Op names a controller operation in telemetry.
type Op string

const (
	OpRestore Op = "restore"
	OpConnect Op = "connect"
	OpClaim   Op = "claim"
)

// Event describes one finished controller operation.
type Event struct {
	Op        Op
	Mode      domain.RewardMode
	From      domain.CheckInPhase
	To        domain.CheckInPhase
	StartedAt time.Time
	Duration  time.Duration
	TxHash    string
	Err       error
}

// Rejected reports whether the user declined the wallet prompt. Rejections
// are logged as outcomes, not failures.
func (e Event) Rejected() bool {
	return errors.Is(e.Err, wallet.ErrUserRejected)
}

// Observer receives controller events.
type Observer interface {
	OnOperation(ctx context.Context, event Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) OnOperation(context.Context, Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes controller events to w as slog text lines.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) OnOperation(ctx context.Context, e Event) {
	attrs := []any{
		"op", string(e.Op),
		"mode", string(e.Mode),
		"from", string(e.From),
		"to", string(e.To),
		"duration_ms", e.Duration.Milliseconds(),
	}
	if e.TxHash != "" {
		attrs = append(attrs, "tx_hash", e.TxHash)
	}
	switch {
	case e.Err == nil:
		o.logger.InfoContext(ctx, "checkin", attrs...)
	case e.Rejected():
		o.logger.InfoContext(ctx, "checkin", append(attrs, "rejected", true)...)
	default:
		o.logger.ErrorContext(ctx, "checkin", append(attrs, "error", e.Err.Error())...)
	}
}

func observerOrNoop(observers []Observer) Observer {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopObserver{}
}
