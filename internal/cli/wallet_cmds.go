package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type walletOp int

const (
	opRestore walletOp = iota
	opConnect
	opCheckIn
)

// walletResultMsg reports a finished controller call. The controller has
// already folded any error into its state as a notice; views only need to
// re-render.
type walletResultMsg struct {
	op walletOp
}

// tickMsg drives the calendar refresh.
type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func walletCmd(ctx context.Context, op walletOp, call func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		_ = call(ctx) // surfaced through the controller notice
		return walletResultMsg{op: op}
	}
}

func restoreCmd(state *SharedState) tea.Cmd {
	if state.App.CheckIn == nil {
		return nil
	}
	return walletCmd(state.Ctx, opRestore, state.App.CheckIn.Restore)
}

func connectCmd(state *SharedState) tea.Cmd {
	return walletCmd(state.Ctx, opConnect, state.App.CheckIn.Connect)
}

func checkInCmd(state *SharedState) tea.Cmd {
	return walletCmd(state.Ctx, opCheckIn, state.App.CheckIn.CheckIn)
}
