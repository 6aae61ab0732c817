package cli

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/yeardots/internal/checkin"
	"github.com/alexanderramin/yeardots/internal/clock"
	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/alexanderramin/yeardots/internal/teatest"
	"github.com/alexanderramin/yeardots/internal/testutil"
	"github.com/alexanderramin/yeardots/internal/wallet"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// testEnv bundles an App with the fakes behind it.
type testEnv struct {
	App      *App
	Provider *testutil.FakeProvider
	Ctrl     *checkin.Controller
	now      time.Time
}

type envOption func(*testEnv)

// withLive switches the configured controller to on-chain claims.
func withLive(confirm bool) envOption {
	return func(e *testEnv) {
		e.Ctrl = liveController(e.Provider)
		e.App.CheckIn = e.Ctrl
		e.App.ConfirmLive = confirm
	}
}

func withProvider(p wallet.Provider) envOption {
	return func(e *testEnv) {
		e.Ctrl = checkin.NewController(p, checkin.MockReward{Amount: 10})
		e.App.CheckIn = e.Ctrl
	}
}

func liveController(p wallet.Provider) *checkin.Controller {
	reward, err := checkin.NewLiveReward(p, wallet.DefaultContract, wallet.DefaultClaimSignature)
	if err != nil {
		panic(err)
	}
	return checkin.NewController(p, reward)
}

// newTestEnv wires an App on a mock reward with no delay, a fake wallet
// and a settable clock starting at 2024-03-15 noon UTC.
func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	e := &testEnv{
		Provider: testutil.NewFakeProvider(),
		now:      testutil.Date(2024, time.March, 15),
	}
	e.Ctrl = checkin.NewController(e.Provider, checkin.MockReward{Amount: 10})
	e.App = &App{
		Clock:        clock.Func(func() time.Time { return e.now }),
		CheckIn:      e.Ctrl,
		Locale:       domain.LocaleEN,
		TickInterval: time.Second,
		ConfirmLive:  true,
		Version:      "test",
	}
	e.App.ControllerFor = func(mode domain.RewardMode) (CheckInController, error) {
		if mode == domain.RewardLive {
			return liveController(e.Provider), nil
		}
		return checkin.NewController(e.Provider, checkin.MockReward{Amount: 10}), nil
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetNow moves the clock; the TUI sees it on the next tick.
func (e *testEnv) SetNow(t time.Time) { e.now = t }

// TestDriver wraps teatest.Driver with access to appModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel, sets the terminal size, and drains
// Init (which restores the wallet session through the fake provider).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	m := newAppModel(context.Background(), app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Confirm returns the confirmation dialog on top of the stack.
func (d *TestDriver) Confirm() *confirmView {
	d.T.Helper()
	m := d.appModel()
	v, ok := m.activeView().(*confirmView)
	require.True(d.T, ok, "active view is not the confirmation dialog")
	return v
}

// Tick delivers one clock tick.
func (d *TestDriver) Tick() {
	d.T.Helper()
	d.Send(tickMsg(time.Now()))
}

// Text returns the rendered view without ANSI styling.
func (d *TestDriver) Text() string {
	return ansiPattern.ReplaceAllString(d.View(), "")
}

func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}
