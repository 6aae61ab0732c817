package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/yeardots/internal/cli/formatter"
	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/spf13/cobra"
)

func newGridCmd(app *App) *cobra.Command {
	date := newDateValue(func() *time.Location { return app.now().Location() })
	var width int

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the year's dot grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := domain.DeriveSnapshot(date.Or(app.now()))
			if width <= 0 {
				width = app.terminalWidth()
			}
			cols := formatter.GridColumns(width)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.RenderMonthStrip(s.Months(), app.Locale))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.RenderDotGrid(s.Cells(), cols))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.RenderLegend())
			return nil
		},
	}

	cmd.Flags().Var(date, "date", "Draw the grid for this date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&width, "width", 0, "Terminal width to fit (default: detected)")

	return cmd
}
