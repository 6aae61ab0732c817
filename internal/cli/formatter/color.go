package formatter

import (
	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRose   = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFaint  = lipgloss.Color("#504945")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRose   = lipgloss.NewStyle().Foreground(ColorRose)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFaint  = lipgloss.NewStyle().Foreground(ColorFaint)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DayStyle returns the style for one grid dot.
func DayStyle(state domain.DayState) lipgloss.Style {
	switch state {
	case domain.DayPast:
		return StyleBold
	case domain.DayUrgent:
		return StyleRose.Bold(true)
	default:
		return StyleFaint
	}
}

// MonthStyle returns the style for one entry of the month strip.
func MonthStyle(state domain.MonthState) lipgloss.Style {
	switch state {
	case domain.MonthCurrent:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#282828")).Background(ColorFg).Bold(true)
	case domain.MonthPast:
		return StyleFaint
	default:
		return StyleDim
	}
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
