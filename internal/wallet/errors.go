package wallet

import (
	"errors"
	"fmt"
)

var (
	// ErrProviderUnavailable indicates no wallet is configured or the
	// provider endpoint cannot be reached.
	ErrProviderUnavailable = errors.New("wallet provider unavailable")

	// ErrUserRejected indicates the user declined the request in the wallet.
	ErrUserRejected = errors.New("request rejected by user")

	// ErrRequestFailed covers every other provider failure.
	ErrRequestFailed = errors.New("wallet request failed")

	// ErrNoAccounts indicates the provider granted access but returned an
	// empty account list.
	ErrNoAccounts = errors.New("wallet returned no accounts")
)

// CodeUserRejected is the EIP-1193 code for a user-declined request.
const CodeUserRejected = 4001

// RPCError is a JSON-RPC error object returned by the provider.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// classify wraps a provider-reported error in the matching sentinel.
func (e *RPCError) classify() error {
	if e.Code == CodeUserRejected {
		return fmt.Errorf("%w: %w", ErrUserRejected, e)
	}
	return fmt.Errorf("%w: %w", ErrRequestFailed, e)
}

func errorCode(err error) string {
	var rpcErr *RPCError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUserRejected):
		return "USER_REJECTED"
	case errors.Is(err, ErrProviderUnavailable):
		return "UNAVAILABLE"
	case errors.As(err, &rpcErr):
		return fmt.Sprintf("RPC_%d", rpcErr.Code)
	default:
		return "REQUEST_FAILED"
	}
}
