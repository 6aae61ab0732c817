package cli

import (
	"github.com/alexanderramin/yeardots/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// huhTheme styles huh forms with the formatter palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(formatter.ColorFaint)

	return t
}

// confirmLiveForm asks before a claim is sent on chain. The answer lands in
// *ok.
func confirmLiveForm(address string, ok *bool) *huh.Form {
	from := "the connected wallet"
	if address != "" {
		from = address
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Submit today's check-in on chain?").
				Description("Your wallet will be asked to sign a transaction from " + from + ".").
				Affirmative("Submit").
				Negative("Cancel").
				Value(ok),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}
