package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/yeardots/internal/wallet"
)

// TestAddress is a well-formed account address for fixtures.
const TestAddress = "0x1111111111111111111111111111111111111111"

// FakeProvider is an in-memory wallet.Provider that records every call.
//
// Set Block to hold RequestAccounts and SendTransaction until the channel is
// closed; Entered receives one value per held call so tests can wait until
// the request is in flight.
type FakeProvider struct {
	Authorized  []string
	Grant       []string
	TxHash      string
	AccountsErr error
	RequestErr  error
	SendErr     error

	Block   chan struct{}
	Entered chan struct{}

	mu    sync.Mutex
	calls []wallet.Method
	sent  []wallet.Tx
}

// NewFakeProvider returns a provider that grants TestAddress and answers
// sends with a fixed hash.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		Grant:  []string{TestAddress},
		TxHash: "0xabc123",
	}
}

func (f *FakeProvider) Accounts(ctx context.Context) ([]string, error) {
	f.record(wallet.MethodAccounts, nil)
	if f.AccountsErr != nil {
		return nil, f.AccountsErr
	}
	return f.Authorized, nil
}

func (f *FakeProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	f.record(wallet.MethodRequestAccounts, nil)
	if err := f.wait(ctx); err != nil {
		return nil, err
	}
	if f.RequestErr != nil {
		return nil, f.RequestErr
	}
	return f.Grant, nil
}

func (f *FakeProvider) SendTransaction(ctx context.Context, tx wallet.Tx) (string, error) {
	f.record(wallet.MethodSendTransaction, &tx)
	if err := f.wait(ctx); err != nil {
		return "", err
	}
	if f.SendErr != nil {
		return "", f.SendErr
	}
	return f.TxHash, nil
}

// Calls returns the methods invoked so far, in order.
func (f *FakeProvider) Calls() []wallet.Method {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]wallet.Method(nil), f.calls...)
}

// CallCount returns how many times m was invoked.
func (f *FakeProvider) CallCount(m wallet.Method) int {
	n := 0
	for _, c := range f.Calls() {
		if c == m {
			n++
		}
	}
	return n
}

// Sent returns every submitted transaction.
func (f *FakeProvider) Sent() []wallet.Tx {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]wallet.Tx(nil), f.sent...)
}

func (f *FakeProvider) record(m wallet.Method, tx *wallet.Tx) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, m)
	if tx != nil {
		f.sent = append(f.sent, *tx)
	}
}

func (f *FakeProvider) wait(ctx context.Context) error {
	if f.Block == nil {
		return nil
	}
	if f.Entered != nil {
		f.Entered <- struct{}{}
	}
	select {
	case <-f.Block:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
