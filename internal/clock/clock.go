// Package clock supplies the reference instant for calendar derivation so
// that nothing downstream reads the wall clock directly.
package clock

import "time"

// Clock returns the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in Location, or time.Local when nil.
type System struct {
	Location *time.Location
}

func (c System) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// Fixed always returns the same instant. Useful for tests and for
// rendering a chosen date.
type Fixed time.Time

func (c Fixed) Now() time.Time { return time.Time(c) }

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }
