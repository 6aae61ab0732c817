package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/yeardots/internal/domain"
)

// FormatDateLine renders "15 March 2024" with the weekday underneath.
func FormatDateLine(s domain.CalendarSnapshot, locale domain.Locale) string {
	day := StyleHeader.Render(fmt.Sprintf("%d", s.Day))
	month := StyleBold.Render(s.MonthName(locale))
	year := Dim(fmt.Sprintf("%d", s.Year))
	return fmt.Sprintf("%s %s %s\n%s", day, month, year, Dim(s.WeekdayName(locale)))
}

// FormatDayCounter renders "Day 75 / 366".
func FormatDayCounter(s domain.CalendarSnapshot) string {
	return fmt.Sprintf("%s %s %s",
		Dim("Day"),
		Bold(fmt.Sprintf("%d", s.DayOfYear)),
		Dim(fmt.Sprintf("/ %d", s.TotalDays)),
	)
}

// FormatStats renders the elapsed/remaining summary under the progress bar.
func FormatStats(s domain.CalendarSnapshot) string {
	var left string
	switch {
	case s.IsLastDay():
		left = StyleRose.Render("last day of the year")
	case s.DaysRemaining() == 1:
		left = Dim("1 day left")
	default:
		left = Dim(fmt.Sprintf("%d days left", s.DaysRemaining()))
	}
	return fmt.Sprintf("%s %s  %s %s  %s",
		Bold(fmt.Sprintf("%.2f%%", s.ProgressPercentage())), Dim("elapsed"),
		StyleFg.Render(fmt.Sprintf("%.2f%%", s.RemainingPercentage())), Dim("remaining"),
		left,
	)
}

// FormatSnapshot renders the full non-interactive year report used by the
// status command.
func FormatSnapshot(s domain.CalendarSnapshot, locale domain.Locale, columns int) string {
	var b strings.Builder

	leap := "no"
	if s.Leap {
		leap = "yes"
	}
	fields := RenderFields([]Field{
		{"Date", s.At.Format("2006-01-02") + " " + Dim(s.WeekdayName(locale))},
		{"Day of year", fmt.Sprintf("%d / %d", s.DayOfYear, s.TotalDays)},
		{"Leap year", leap},
		{"Elapsed", fmt.Sprintf("%.2f%%", s.ProgressPercentage())},
		{"Remaining", fmt.Sprintf("%.2f%%", s.RemainingPercentage())},
		{"Days left", fmt.Sprintf("%d", s.DaysRemaining())},
	})
	b.WriteString(RenderBox(fmt.Sprintf("Year %d", s.Year), strings.TrimRight(fields, "\n")) + "\n\n")

	b.WriteString(RenderMonthStrip(s.Months(), locale) + "\n\n")
	b.WriteString(indent(RenderDotGrid(s.Cells(), columns), "  ") + "\n\n")
	b.WriteString("  " + RenderProgress(s.ProgressPercentage(), max(columns*2-10, 10)) + "\n")
	b.WriteString("  " + RenderLegend() + "\n")

	return b.String()
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
