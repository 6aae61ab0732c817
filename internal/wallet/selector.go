package wallet

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Selector returns the 4-byte function selector for a canonical signature
// such as "checkIn()": the first four bytes of its Keccak-256 hash.
func Selector(signature string) [4]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	var sel [4]byte
	copy(sel[:], h.Sum(nil))
	return sel
}

// ParseSelector accepts either a signature ("checkIn()") or a raw hex
// selector ("0x183ff085").
func ParseSelector(s string) ([4]byte, error) {
	var sel [4]byte
	if strings.Contains(s, "(") {
		return Selector(s), nil
	}
	raw := strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(raw)
	if err != nil {
		return sel, fmt.Errorf("selector %q: %w", s, err)
	}
	if len(b) != 4 {
		return sel, fmt.Errorf("selector %q: want 4 bytes, got %d", s, len(b))
	}
	copy(sel[:], b)
	return sel, nil
}
