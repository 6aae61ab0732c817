package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/yeardots/internal/clock"
	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/spf13/cobra"
)

// CheckInController is the check-in surface the commands and the TUI drive.
// *checkin.Controller satisfies it.
type CheckInController interface {
	State() domain.CheckInState
	Mode() domain.RewardMode
	DismissNotice()
	Restore(ctx context.Context) error
	Connect(ctx context.Context) error
	CheckIn(ctx context.Context) error
}

// App holds everything the commands need.
type App struct {
	Clock   clock.Clock
	CheckIn CheckInController

	// ControllerFor builds a controller for a reward mode other than the
	// configured one. Used by `checkin --mode`.
	ControllerFor func(mode domain.RewardMode) (CheckInController, error)

	Locale       domain.Locale
	TickInterval time.Duration
	ConfirmLive  bool
	Version      string

	// IsInteractive reports whether stdin is a terminal. The bare command
	// opens the dashboard only when it returns true.
	IsInteractive func() bool
	// TerminalWidth returns the width of stdout, or 0 when unknown.
	TerminalWidth func() int
}

func (a *App) now() time.Time {
	if a.Clock == nil {
		return time.Now()
	}
	return a.Clock.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) tickInterval() time.Duration {
	if a.TickInterval <= 0 {
		return time.Second
	}
	return a.TickInterval
}

func (a *App) terminalWidth() int {
	if a.TerminalWidth == nil {
		return 0
	}
	return a.TerminalWidth()
}

// controllerFor returns the configured controller, or a fresh one when mode
// names a different reward action.
func (a *App) controllerFor(mode domain.RewardMode) (CheckInController, error) {
	if mode == "" || (a.CheckIn != nil && a.CheckIn.Mode() == mode) {
		return a.CheckIn, nil
	}
	if a.ControllerFor == nil {
		return a.CheckIn, nil
	}
	return a.ControllerFor(mode)
}

// NewRootCmd creates the top-level "yeardots" command. Run bare in a
// terminal it opens the dashboard; otherwise it prints the status report.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "yeardots",
		Short:         "The year as a grid of dots, with a daily check-in",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runTUI(cmd.Context(), app)
			}
			return printStatus(cmd, app, statusOptions{})
		},
	}

	root.AddCommand(
		newStatusCmd(app),
		newGridCmd(app),
		newCheckInCmd(app),
		newConnectCmd(app),
		newVersionCmd(app),
	)

	return root
}

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v := app.Version
			if v == "" {
				v = "dev"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "yeardots %s\n", v)
		},
	}
}
