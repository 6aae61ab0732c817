package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/alexanderramin/yeardots/internal/wallet"
)

// Reward is what a completed claim produced.
type Reward struct {
	Amount int
	TxHash string
}

// RewardAction grants the reward for a check-in.
type RewardAction interface {
	Mode() domain.RewardMode
	Claim(ctx context.Context, address string) (Reward, error)
}

const (
	DefaultMockDelay  = 1500 * time.Millisecond
	DefaultMockAmount = 10
)

// MockReward waits Delay and then credits Amount tokens locally.
type MockReward struct {
	Delay  time.Duration
	Amount int
}

func (MockReward) Mode() domain.RewardMode { return domain.RewardMock }

func (m MockReward) Claim(ctx context.Context, _ string) (Reward, error) {
	timer := time.NewTimer(m.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return Reward{}, ctx.Err()
	case <-timer.C:
		return Reward{Amount: m.Amount}, nil
	}
}

// LiveReward submits a zero-value call of Selector on Contract and returns
// as soon as the provider hands back a transaction hash.
type LiveReward struct {
	Provider wallet.Provider
	Contract string
	Selector [4]byte
}

// NewLiveReward validates the contract address and claim selector.
func NewLiveReward(provider wallet.Provider, contract, selector string) (*LiveReward, error) {
	if err := wallet.ValidateAddress(contract); err != nil {
		return nil, fmt.Errorf("reward contract: %w", err)
	}
	sel, err := wallet.ParseSelector(selector)
	if err != nil {
		return nil, fmt.Errorf("claim selector: %w", err)
	}
	return &LiveReward{Provider: provider, Contract: contract, Selector: sel}, nil
}

func (*LiveReward) Mode() domain.RewardMode { return domain.RewardLive }

func (l *LiveReward) Claim(ctx context.Context, address string) (Reward, error) {
	hash, err := l.Provider.SendTransaction(ctx, wallet.ClaimTx(address, l.Contract, l.Selector))
	if err != nil {
		return Reward{}, err
	}
	return Reward{TxHash: hash}, nil
}

// NewRewardAction builds the action for mode.
func NewRewardAction(mode domain.RewardMode, provider wallet.Provider, cfg wallet.Config, mock MockReward) (RewardAction, error) {
	switch mode {
	case domain.RewardMock, "":
		return mock, nil
	case domain.RewardLive:
		return NewLiveReward(provider, cfg.Contract, cfg.ClaimSignature)
	default:
		return nil, fmt.Errorf("unknown reward mode %q (want mock or live)", mode)
	}
}
