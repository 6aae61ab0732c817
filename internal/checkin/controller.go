package checkin

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/alexanderramin/yeardots/internal/wallet"
)

// Controller owns the CheckInState and is the only thing that mutates it.
// Methods are safe to call from concurrent tea.Cmd goroutines; Pending is
// checked and set under the lock so a second trigger never reaches the
// provider.
type Controller struct {
	provider wallet.Provider
	reward   RewardAction
	observer Observer

	mu    sync.Mutex
	state domain.CheckInState
}

func NewController(provider wallet.Provider, reward RewardAction, observers ...Observer) *Controller {
	return &Controller{
		provider: provider,
		reward:   reward,
		observer: observerOrNoop(observers),
		state:    domain.CheckInState{Phase: domain.PhaseIdle},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() domain.CheckInState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Mode reports which reward action is configured.
func (c *Controller) Mode() domain.RewardMode {
	return c.reward.Mode()
}

// DismissNotice clears the user-facing notice.
func (c *Controller) DismissNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Notice = ""
}

// Restore silently picks up an address the wallet has already authorized.
// Failures are reported to the observer only; the state is left untouched.
func (c *Controller) Restore(ctx context.Context) (err error) {
	defer c.observe(ctx, OpRestore, c.State().Phase, time.Now(), &err)

	accounts, err := c.provider.Accounts(ctx)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Address == "" && !c.state.Pending {
		c.state.Address = accounts[0]
		c.state.Phase = c.settledPhase()
	}
	return nil
}

// Connect asks the wallet for account access. On failure the phase falls
// back to where it was and a notice is set unless the user rejected.
func (c *Controller) Connect(ctx context.Context) (err error) {
	defer c.observe(ctx, OpConnect, c.State().Phase, time.Now(), &err)

	prev, err := c.begin(domain.PhaseConnecting)
	if err != nil {
		return err
	}

	accounts, err := c.provider.RequestAccounts(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Pending = false
	if err != nil {
		c.state.Phase = prev
		c.state.Notice = NoticeFor(err)
		return err
	}
	if len(accounts) == 0 {
		c.state.Phase = prev
		c.state.Notice = NoticeFor(wallet.ErrNoAccounts)
		return wallet.ErrNoAccounts
	}
	c.state.Address = accounts[0]
	c.state.Phase = c.settledPhase()
	return nil
}

// CheckIn claims today's reward, connecting the wallet first when needed.
// It returns once the reward action acknowledges; live claims do not wait
// for the transaction to be mined.
func (c *Controller) CheckIn(ctx context.Context) (err error) {
	pre := c.State()
	defer c.observe(ctx, OpClaim, pre.Phase, time.Now(), &err)

	switch {
	case pre.Pending:
		return ErrBusy
	case pre.CheckedInToday:
		return ErrAlreadyCheckedIn
	case !pre.Connected():
		if err := c.Connect(ctx); err != nil {
			return err
		}
	}

	prev, err := c.begin(domain.PhaseSubmitting)
	if err != nil {
		return err
	}
	c.mu.Lock()
	address := c.state.Address
	c.mu.Unlock()

	reward, err := c.reward.Claim(ctx, address)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Pending = false
	if err != nil {
		c.state.Phase = prev
		c.state.Notice = NoticeFor(err)
		return err
	}
	c.state.CheckedInToday = true
	c.state.Phase = domain.PhaseCompleted
	c.state.Balance += reward.Amount
	c.state.LastTxHash = reward.TxHash
	c.state.Notice = ""
	return nil
}

// begin marks an operation in flight and returns the phase to restore on
// failure.
func (c *Controller) begin(phase domain.CheckInPhase) (domain.CheckInPhase, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Pending {
		return "", ErrBusy
	}
	if phase == domain.PhaseSubmitting && c.state.CheckedInToday {
		return "", ErrAlreadyCheckedIn
	}
	prev := c.state.Phase
	c.state.Pending = true
	c.state.Phase = phase
	c.state.Notice = ""
	return prev, nil
}

// settledPhase is the resting phase for a connected wallet. Caller holds mu.
func (c *Controller) settledPhase() domain.CheckInPhase {
	if c.state.CheckedInToday {
		return domain.PhaseCompleted
	}
	return domain.PhaseConnected
}

// observe reports an operation once it returns; errp points at the named
// result so the deferred call sees the final error.
func (c *Controller) observe(ctx context.Context, op Op, from domain.CheckInPhase, start time.Time, errp *error) {
	s := c.State()
	e := Event{
		Op:        op,
		Mode:      c.reward.Mode(),
		From:      from,
		To:        s.Phase,
		StartedAt: start,
		Duration:  time.Since(start),
		Err:       *errp,
	}
	if op == OpClaim && *errp == nil {
		e.TxHash = s.LastTxHash
	}
	c.observer.OnOperation(ctx, e)
}
