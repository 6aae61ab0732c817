package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/yeardots/internal/checkin"
	"github.com/alexanderramin/yeardots/internal/cli"
	"github.com/alexanderramin/yeardots/internal/clock"
	"github.com/alexanderramin/yeardots/internal/config"
	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/alexanderramin/yeardots/internal/wallet"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	logOut, err := cfg.OpenLog()
	if err != nil {
		return err
	}
	defer logOut.Close()

	// Wire the wallet provider
	var walletObserver wallet.Observer = wallet.NoopObserver{}
	if cfg.Wallet.LogCalls {
		walletObserver = wallet.NewLogObserver(logOut)
	}
	provider := wallet.NewRPCProvider(cfg.Wallet, walletObserver)
	checkinObserver := checkin.NewLogObserver(logOut)

	newController := func(mode domain.RewardMode) (cli.CheckInController, error) {
		reward, err := checkin.NewRewardAction(mode, provider, cfg.Wallet, cfg.MockReward())
		if err != nil {
			return nil, err
		}
		return checkin.NewController(provider, reward, checkinObserver), nil
	}
	ctrl, err := newController(cfg.CheckIn.Mode)
	if err != nil {
		return err
	}

	app := &cli.App{
		Clock:         clock.System{Location: loc},
		CheckIn:       ctrl,
		ControllerFor: newController,
		Locale:        cfg.Locale(),
		TickInterval:  cfg.Display.TickInterval,
		ConfirmLive:   cfg.CheckIn.ConfirmLive,
		Version:       version,
	}

	// Detect interactive terminal for the dashboard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.TerminalWidth = func() int {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return 0
		}
		return w
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
