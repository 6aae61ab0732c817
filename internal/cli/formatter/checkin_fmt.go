package formatter

import (
	"fmt"

	"github.com/alexanderramin/yeardots/internal/domain"
)

// WalletBadge shows the connected address and mock balance, or a connect
// hint when no wallet is linked.
func WalletBadge(s domain.CheckInState) string {
	switch {
	case s.Phase == domain.PhaseConnecting:
		return StyleYellow.Render("◌ connecting…")
	case !s.Connected():
		return Dim("○ wallet not connected")
	}
	badge := StyleGreen.Render("● " + domain.ShortAddress(s.Address))
	if s.Balance > 0 {
		badge += "  " + StyleYellow.Render(fmt.Sprintf("+%d LIFT", s.Balance))
	}
	return badge
}

// CheckInPill renders the check-in action. spinner is the current spinner
// frame shown while a request is in flight.
func CheckInPill(s domain.CheckInState, spinner string) string {
	switch {
	case s.CheckedInToday:
		return StyleGreen.Render("✔ CLAIMED")
	case s.Pending:
		return StyleYellow.Render(spinner + " waiting for wallet")
	case !s.Connected():
		return StyleHeader.Render("▶ CONNECT & CHECK IN")
	default:
		return StyleHeader.Render("▶ CHECK IN")
	}
}

// TxLine renders the last submitted transaction hash, if any.
func TxLine(s domain.CheckInState) string {
	if s.LastTxHash == "" {
		return ""
	}
	return Dim("tx ") + StyleBlue.Render(s.LastTxHash)
}

// FormatCheckInResult is the one-shot summary printed by the checkin command.
func FormatCheckInResult(s domain.CheckInState, mode domain.RewardMode) string {
	if !s.CheckedInToday {
		return Dim("Not checked in.") + "\n"
	}
	out := StyleGreen.Render("✔ Checked in") + " " + Dim("as") + " " + domain.ShortAddress(s.Address) + "\n"
	switch mode {
	case domain.RewardLive:
		out += TxLine(s) + "\n" + Dim("Submitted; not waiting for confirmation.") + "\n"
	default:
		out += StyleYellow.Render(fmt.Sprintf("+%d LIFT", s.Balance)) + " " + Dim("(simulated)") + "\n"
	}
	return out
}
