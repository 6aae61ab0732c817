package formatter

import (
	"strings"

	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Grid glyphs, one per day state.
const (
	DotPast   = "●"
	DotUrgent = "◉"
	DotFuture = "·"
)

const (
	minGridColumns = 7
	maxGridColumns = 61
)

// GridColumns picks how many dots fit on one row of a terminal of the given
// width. Each dot takes two cells and the grid is indented by two.
func GridColumns(width int) int {
	if width <= 0 {
		return 30
	}
	return min(max((width-2)/2, minGridColumns), maxGridColumns)
}

// GridWidth is the rendered width of a dot grid with the given columns.
func GridWidth(columns int) int {
	return max(columns, 1)*2 - 1
}

// DayGlyph returns the unstyled glyph for a day state.
func DayGlyph(state domain.DayState) string {
	switch state {
	case domain.DayPast:
		return DotPast
	case domain.DayUrgent:
		return DotUrgent
	default:
		return DotFuture
	}
}

// RenderDotGrid lays out one dot per day, January 1 first, wrapping every
// columns dots.
func RenderDotGrid(cells []domain.DayCell, columns int) string {
	if columns < 1 {
		columns = 1
	}
	var b strings.Builder
	for i, c := range cells {
		if i > 0 {
			if i%columns == 0 {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(DayStyle(c.State).Render(DayGlyph(c.State)))
	}
	return b.String()
}

// RenderMonthStrip renders the twelve month labels with the current month
// highlighted.
func RenderMonthStrip(months []domain.MonthCell, locale domain.Locale) string {
	parts := make([]string, 0, len(months))
	for _, m := range months {
		label := " " + locale.ShortMonthLabel(m.Month) + " "
		parts = append(parts, MonthStyle(m.State).Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// RenderLegend explains the three dot glyphs.
func RenderLegend() string {
	return strings.Join([]string{
		DayStyle(domain.DayPast).Render(DotPast) + Dim(" past"),
		DayStyle(domain.DayUrgent).Render(DotUrgent) + Dim(" this month"),
		DayStyle(domain.DayFuture).Render(DotFuture) + Dim(" ahead"),
	}, "   ")
}
