package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is one labeled line of a report.
type Field struct {
	Label string
	Value string
}

// RenderFields lays out labels in a dim right-padded column followed by
// their values. Values may carry ANSI styling; only labels are measured.
func RenderFields(fields []Field) string {
	width := 0
	for _, f := range fields {
		width = max(width, lipgloss.Width(f.Label))
	}

	var b strings.Builder
	for _, f := range fields {
		pad := strings.Repeat(" ", width-lipgloss.Width(f.Label))
		b.WriteString("  " + Dim(f.Label) + pad + "  " + f.Value + "\n")
	}
	return b.String()
}
