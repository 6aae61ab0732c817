package checkin

import (
	"context"
	"errors"

	"github.com/alexanderramin/yeardots/internal/wallet"
)

var (
	// ErrBusy indicates a connect or claim is already in flight. No
	// provider request was made.
	ErrBusy = errors.New("check-in already in progress")

	// ErrAlreadyCheckedIn indicates the reward was claimed earlier in this
	// session.
	ErrAlreadyCheckedIn = errors.New("already checked in")
)

// NoticeFor maps a controller error to the message shown to the user.
// User rejections and cancellations are absorbed and yield "".
func NoticeFor(err error) string {
	switch {
	case err == nil,
		errors.Is(err, wallet.ErrUserRejected),
		errors.Is(err, context.Canceled),
		errors.Is(err, ErrBusy):
		return ""
	case errors.Is(err, wallet.ErrProviderUnavailable):
		return "No wallet found. Install a wallet bridge and set YEARDOTS_WALLET_ENDPOINT."
	case errors.Is(err, ErrAlreadyCheckedIn):
		return "Already checked in today."
	case errors.Is(err, wallet.ErrNoAccounts):
		return "Wallet returned no accounts."
	default:
		return "Wallet request failed. Please try again."
	}
}
