package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// Notice renders a user-facing notice line, or "" when there is none.
func Notice(text string) string {
	if text == "" {
		return ""
	}
	return StyleYellow.Render("! " + text)
}

// ModeBadge marks whether check-ins are simulated or sent on chain.
func ModeBadge(live bool) string {
	if live {
		return StyleRose.Render("▲ LIVE")
	}
	return StyleDim.Render("◇ MOCK")
}

// Center pads s so it sits in the middle of width columns.
func Center(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
