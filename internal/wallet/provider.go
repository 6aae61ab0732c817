package wallet

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
)

// Tx is the eth_sendTransaction payload. All fields are 0x-prefixed hex.
type Tx struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Data  string `json:"data"`
	Value string `json:"value"`
}

// Provider is the wallet boundary the check-in flow talks to.
type Provider interface {
	// Accounts returns already-authorized addresses without prompting.
	Accounts(ctx context.Context) ([]string, error)

	// RequestAccounts asks the user to grant access and returns the
	// authorized addresses.
	RequestAccounts(ctx context.Context) ([]string, error)

	// SendTransaction submits tx and returns its hash. It does not wait
	// for the transaction to be mined.
	SendTransaction(ctx context.Context, tx Tx) (string, error)
}

// Unavailable is the Provider used when no wallet is configured.
type Unavailable struct{}

func (Unavailable) Accounts(context.Context) ([]string, error) {
	return nil, ErrProviderUnavailable
}

func (Unavailable) RequestAccounts(context.Context) ([]string, error) {
	return nil, ErrProviderUnavailable
}

func (Unavailable) SendTransaction(context.Context, Tx) (string, error) {
	return "", ErrProviderUnavailable
}

// ClaimTx builds the zero-value call of selector on contract from sender.
func ClaimTx(from, contract string, selector [4]byte) Tx {
	return Tx{
		From:  from,
		To:    contract,
		Data:  "0x" + hex.EncodeToString(selector[:]),
		Value: "0x0",
	}
}

// ValidateAddress checks that addr is a 0x-prefixed 20-byte hex string.
// Checksum casing is not verified.
func ValidateAddress(addr string) error {
	raw, ok := strings.CutPrefix(addr, "0x")
	if !ok {
		return fmt.Errorf("address %q: missing 0x prefix", addr)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return fmt.Errorf("address %q: %w", addr, err)
	}
	if len(b) != 20 {
		return fmt.Errorf("address %q: want 20 bytes, got %d", addr, len(b))
	}
	return nil
}
