package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// runTUI opens the dashboard and blocks until the user quits. In-flight
// wallet calls are cancelled on exit.
func runTUI(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newAppModel(ctx, app), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
