package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/yeardots/internal/checkin"
	"github.com/alexanderramin/yeardots/internal/cli/formatter"
	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/alexanderramin/yeardots/internal/wallet"
	"github.com/spf13/cobra"
)

func newCheckInCmd(app *App) *cobra.Command {
	var mode string
	var yes bool

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Claim today's check-in reward",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode != "" && !domain.ValidRewardModes[mode] {
				return fmt.Errorf("invalid --mode %q (want mock or live)", mode)
			}
			ctrl, err := app.controllerFor(domain.RewardMode(mode))
			if err != nil {
				return err
			}
			if ctrl == nil {
				return errors.New("check-in is not configured")
			}

			ctx := commandContext(cmd)
			// An already-authorized account avoids a second wallet prompt.
			// Without any wallet the claim cannot succeed, so stop before
			// asking for confirmation. Other restore failures fall through to
			// the connect prompt inside CheckIn.
			if err := ctrl.Restore(ctx); errors.Is(err, wallet.ErrProviderUnavailable) {
				return reportWalletResult(cmd, err, nil)
			}

			if ctrl.Mode() == domain.RewardLive && app.ConfirmLive && !yes {
				if !app.interactive() {
					return errors.New("live check-in needs confirmation; pass --yes to submit non-interactively")
				}
				var ok bool
				if err := confirmLiveForm(ctrl.State().Address, &ok).Run(); err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Waiting for wallet…")
			}
			err = ctrl.CheckIn(ctx)
			stop()

			return reportWalletResult(cmd, err, func() {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCheckInResult(ctrl.State(), ctrl.Mode()))
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Reward mode for this run: mock or live (default: configured)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the live confirmation prompt")

	return cmd
}

func newConnectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Ask the wallet for account access and print the address",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.CheckIn == nil {
				return errors.New("check-in is not configured")
			}
			err := app.CheckIn.Connect(commandContext(cmd))
			return reportWalletResult(cmd, err, func() {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.WalletBadge(app.CheckIn.State()))
			})
		},
	}
}

// reportWalletResult runs onSuccess, treats a rejection in the wallet as a
// clean exit, and prints the user-facing notice before returning any other
// error.
func reportWalletResult(cmd *cobra.Command, err error, onSuccess func()) error {
	switch {
	case err == nil:
		onSuccess()
		return nil
	case errors.Is(err, wallet.ErrUserRejected):
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Request rejected in wallet."))
		return nil
	case errors.Is(err, checkin.ErrAlreadyCheckedIn):
		fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(checkin.NoticeFor(err)))
		return nil
	}
	if notice := checkin.NoticeFor(err); notice != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.Notice(notice))
	}
	return err
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
