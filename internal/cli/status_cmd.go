package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/yeardots/internal/cli/formatter"
	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/spf13/cobra"
)

type statusOptions struct {
	date   *dateValue
	asJSON bool
}

// statusJSON is the machine-readable form of the status report.
type statusJSON struct {
	Date                string         `json:"date"`
	Year                int            `json:"year"`
	Month               int            `json:"month"`
	MonthName           string         `json:"month_name"`
	Day                 int            `json:"day"`
	Weekday             string         `json:"weekday"`
	Leap                bool           `json:"leap"`
	TotalDays           int            `json:"total_days"`
	DayOfYear           int            `json:"day_of_year"`
	DaysRemaining       int            `json:"days_remaining"`
	ProgressPercentage  float64        `json:"progress_percentage"`
	RemainingPercentage float64        `json:"remaining_percentage"`
	Days                map[string]int `json:"days"`
}

func newStatusCmd(app *App) *cobra.Command {
	opts := statusOptions{date: newDateValue(func() *time.Location { return app.now().Location() })}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show how far through the year we are",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printStatus(cmd, app, opts)
		},
	}

	cmd.Flags().Var(opts.date, "date", "Report for this date instead of today (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print JSON")

	return cmd
}

func printStatus(cmd *cobra.Command, app *App, opts statusOptions) error {
	now := app.now()
	if opts.date != nil {
		now = opts.date.Or(now)
	}
	s := domain.DeriveSnapshot(now)

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(toStatusJSON(s, app.Locale))
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSnapshot(s, app.Locale, formatter.GridColumns(app.terminalWidth())))
	return nil
}

func toStatusJSON(s domain.CalendarSnapshot, locale domain.Locale) statusJSON {
	counts := domain.CountStates(s.Cells())
	return statusJSON{
		Date:                s.At.Format(dateLayout),
		Year:                s.Year,
		Month:               int(s.Month),
		MonthName:           s.MonthName(locale),
		Day:                 s.Day,
		Weekday:             s.WeekdayName(locale),
		Leap:                s.Leap,
		TotalDays:           s.TotalDays,
		DayOfYear:           s.DayOfYear,
		DaysRemaining:       s.DaysRemaining(),
		ProgressPercentage:  s.ProgressPercentage(),
		RemainingPercentage: s.RemainingPercentage(),
		Days: map[string]int{
			string(domain.DayPast):   counts[domain.DayPast],
			string(domain.DayUrgent): counts[domain.DayUrgent],
			string(domain.DayFuture): counts[domain.DayFuture],
		},
	}
}
