package cli

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// dateValue is a pflag.Value holding an optional calendar date.
type dateValue struct {
	date *time.Time
	loc  func() *time.Location
}

var _ pflag.Value = (*dateValue)(nil)

func newDateValue(loc func() *time.Location) *dateValue {
	return &dateValue{loc: loc}
}

func (d *dateValue) String() string {
	if d.date == nil {
		return ""
	}
	return d.date.Format(dateLayout)
}

func (d *dateValue) Set(s string) error {
	loc := time.Local
	if d.loc != nil {
		loc = d.loc()
	}
	t, err := time.ParseInLocation(dateLayout, s, loc)
	if err != nil {
		return fmt.Errorf("expected YYYY-MM-DD, got %q", s)
	}
	// Midday keeps the derived day stable across offset changes.
	t = t.Add(12 * time.Hour)
	d.date = &t
	return nil
}

func (d *dateValue) Type() string { return "date" }

// Or returns the parsed date, or fallback when the flag was not set.
func (d *dateValue) Or(fallback time.Time) time.Time {
	if d.date == nil {
		return fallback
	}
	return *d.date
}
