package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

type pushViewMsg struct {
	view View
}

// confirmCompleteMsg is sent when a confirmation closes. The appModel pops
// the dialog and then runs next, which is nil when the user cancelled.
type confirmCompleteMsg struct {
	next tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}
