package domain

import (
	"fmt"
	"math"
	"time"
)

const day = 24 * time.Hour

// CalendarSnapshot holds every displayable calendar fact for one reference
// instant. It is recomputed on each clock tick and never mutated.
type CalendarSnapshot struct {
	At        time.Time
	Year      int
	Month     time.Month
	Day       int
	Weekday   time.Weekday
	Leap      bool
	TotalDays int
	DayOfYear int
}

// IsLeapYear reports whether year has 366 days under the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DeriveSnapshot computes the calendar facts for now, interpreted in
// now's own location.
func DeriveSnapshot(now time.Time) CalendarSnapshot {
	year, month, dom := now.Date()
	startOfYear := time.Date(year, time.January, 1, 0, 0, 0, 0, now.Location())
	total := DaysInYear(year)

	// Elapsed time over fixed 24h units. Offset changes inside the year skew
	// the count by up to an hour, so clamp into the year.
	doy := int(math.Floor(float64(now.Sub(startOfYear))/float64(day))) + 1
	doy = min(max(doy, 1), total)

	return CalendarSnapshot{
		At:        now,
		Year:      year,
		Month:     month,
		Day:       dom,
		Weekday:   now.Weekday(),
		Leap:      IsLeapYear(year),
		TotalDays: total,
		DayOfYear: doy,
	}
}

// MonthIndex returns the zero-based month, 0 for January.
func (s CalendarSnapshot) MonthIndex() int {
	return int(s.Month) - 1
}

// ProgressPercentage is DayOfYear/TotalDays as a percentage rounded to two
// decimal places.
func (s CalendarSnapshot) ProgressPercentage() float64 {
	if s.TotalDays == 0 {
		return 0
	}
	return round2(float64(s.DayOfYear) / float64(s.TotalDays) * 100)
}

// RemainingPercentage is the complement of ProgressPercentage.
func (s CalendarSnapshot) RemainingPercentage() float64 {
	return round2(100 - s.ProgressPercentage())
}

// DaysRemaining counts the days left after today. Zero on Dec 31.
func (s CalendarSnapshot) DaysRemaining() int {
	return s.TotalDays - s.DayOfYear
}

// IsLastDay reports whether the snapshot falls on the final day of its year.
func (s CalendarSnapshot) IsLastDay() bool {
	return s.DaysRemaining() == 0
}

// WeekdayName returns the weekday label for the given locale.
func (s CalendarSnapshot) WeekdayName(locale Locale) string {
	return locale.weekday(s.Weekday)
}

// MonthName returns the current month's label for the given locale.
func (s CalendarSnapshot) MonthName(locale Locale) string {
	return locale.month(s.Month)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DateForIndex returns the calendar date of the (dayIndex+1)-th day of the
// snapshot's year.
func DateForIndex(dayIndex int, s CalendarSnapshot) (time.Time, error) {
	if dayIndex < 0 || dayIndex >= s.TotalDays {
		return time.Time{}, fmt.Errorf("%w: day index %d outside [0, %d)", ErrInvalidArgument, dayIndex, s.TotalDays)
	}
	return time.Date(s.Year, time.January, dayIndex+1, 0, 0, 0, 0, s.At.Location()), nil
}
