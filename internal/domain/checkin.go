package domain

import "fmt"

// CheckInState is the single mutable record of the check-in flow.
//
// CheckedInToday is never reset by a day rollover; a session that stays open
// past midnight keeps showing the claim as done.
type CheckInState struct {
	Address        string
	Phase          CheckInPhase
	Pending        bool
	CheckedInToday bool
	Balance        int
	LastTxHash     string
	Notice         string
}

// Connected reports whether a wallet address has been granted.
func (s CheckInState) Connected() bool {
	return s.Address != ""
}

// ShortAddress abbreviates a hex address to its first six and last four
// characters, e.g. 0x47b9...d031.
func ShortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return fmt.Sprintf("%s...%s", addr[:6], addr[len(addr)-4:])
}
