package domain

import "time"

// DayCell is one dot of the year grid.
type DayCell struct {
	Index int
	Date  time.Time
	State DayState
}

// MonthCell is one entry of the month strip above the grid.
type MonthCell struct {
	Month time.Month
	State MonthState
}

// ClassifyDay maps a day index of the snapshot's year to its display state.
//
// Past and future are decided at month granularity: every day of an earlier
// month is past and every day of a later month is future. Only inside the
// current month does the day matter, where days before today are past and
// today through month end are urgent.
func ClassifyDay(dayIndex int, s CalendarSnapshot) (DayState, error) {
	date, err := DateForIndex(dayIndex, s)
	if err != nil {
		return "", err
	}
	return classifyDate(date, s), nil
}

func classifyDate(date time.Time, s CalendarSnapshot) DayState {
	switch {
	case date.Month() < s.Month:
		return DayPast
	case date.Month() > s.Month:
		return DayFuture
	case date.Day() < s.Day:
		return DayPast
	default:
		return DayUrgent
	}
}

// Cells classifies every day of the snapshot's year, January 1 first.
func (s CalendarSnapshot) Cells() []DayCell {
	cells := make([]DayCell, s.TotalDays)
	for i := range cells {
		// Index is in range by construction.
		date, _ := DateForIndex(i, s)
		cells[i] = DayCell{Index: i, Date: date, State: classifyDate(date, s)}
	}
	return cells
}

// CountStates tallies cells per state.
func CountStates(cells []DayCell) map[DayState]int {
	counts := make(map[DayState]int, 3)
	for _, c := range cells {
		counts[c.State]++
	}
	return counts
}

// Months returns the twelve months of the year relative to the snapshot.
func (s CalendarSnapshot) Months() []MonthCell {
	months := make([]MonthCell, 12)
	for i := range months {
		m := time.Month(i + 1)
		state := MonthFuture
		switch {
		case m < s.Month:
			state = MonthPast
		case m == s.Month:
			state = MonthCurrent
		}
		months[i] = MonthCell{Month: m, State: state}
	}
	return months
}
