package testutil

import (
	"time"

	"github.com/alexanderramin/yeardots/internal/clock"
	"github.com/alexanderramin/yeardots/internal/domain"
)

// Date returns midday of the given date in UTC, far from any day boundary.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// FixedClock returns a clock pinned to Date(year, month, day).
func FixedClock(year int, month time.Month, day int) clock.Clock {
	return clock.Fixed(Date(year, month, day))
}

// Snapshot derives the calendar snapshot for Date(year, month, day).
func Snapshot(year int, month time.Month, day int) domain.CalendarSnapshot {
	return domain.DeriveSnapshot(Date(year, month, day))
}

// SteppingClock advances by step on every call to Now, starting at start.
type SteppingClock struct {
	next time.Time
	step time.Duration
}

func NewSteppingClock(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{next: start, step: step}
}

func (c *SteppingClock) Now() time.Time {
	t := c.next
	c.next = c.next.Add(c.step)
	return t
}
