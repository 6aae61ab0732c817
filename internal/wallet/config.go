package wallet

import (
	"os"
	"strconv"
)

// Method names a wallet JSON-RPC method.
type Method string

const (
	MethodAccounts        Method = "eth_accounts"
	MethodRequestAccounts Method = "eth_requestAccounts"
	MethodSendTransaction Method = "eth_sendTransaction"
)

// DefaultContract is the reward token contract that receives check-in calls.
const DefaultContract = "0x47b93c2a0920BBe10eFc7854b8FD04a02E85d031"

// DefaultClaimSignature is the zero-argument claim entry point.
const DefaultClaimSignature = "checkIn()"

// Config holds all configuration for the wallet provider boundary.
// An empty Endpoint means no wallet is available.
type Config struct {
	Endpoint       string         `yaml:"endpoint"`
	TimeoutMs      int            `yaml:"timeout_ms"`
	LogCalls       bool           `yaml:"log_calls"`
	Contract       string         `yaml:"contract"`
	ClaimSignature string         `yaml:"claim_signature"`
	MethodTimeouts map[Method]int `yaml:"method_timeouts_ms"`
}

// DefaultConfig returns a Config with sensible defaults. Requests that wait
// on the user get longer timeouts than silent reads.
func DefaultConfig() Config {
	return Config{
		TimeoutMs:      10000,
		Contract:       DefaultContract,
		ClaimSignature: DefaultClaimSignature,
		MethodTimeouts: map[Method]int{
			MethodAccounts:        3000,
			MethodRequestAccounts: 120000,
			MethodSendTransaction: 300000,
		},
	}
}

// Enabled reports whether a provider endpoint is configured.
func (c Config) Enabled() bool {
	return c.Endpoint != ""
}

// MethodTimeout returns the effective timeout for a method in milliseconds.
// Uses the method-specific timeout if set, otherwise the global timeout.
func (c Config) MethodTimeout(m Method) int {
	if ms, ok := c.MethodTimeouts[m]; ok && ms > 0 {
		return ms
	}
	return c.TimeoutMs
}

// ApplyEnv overrides cfg from YEARDOTS_WALLET_* environment variables.
// Malformed values are ignored.
func ApplyEnv(cfg *Config) {
	if v := os.Getenv("YEARDOTS_WALLET_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("YEARDOTS_WALLET_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("YEARDOTS_WALLET_CONTRACT"); v != "" {
		cfg.Contract = v
	}
	if v := os.Getenv("YEARDOTS_WALLET_CLAIM_SIGNATURE"); v != "" {
		cfg.ClaimSignature = v
	}
	if v := os.Getenv("YEARDOTS_WALLET_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	applyMethodTimeoutEnv(cfg, MethodAccounts, "YEARDOTS_WALLET_ACCOUNTS_TIMEOUT_MS")
	applyMethodTimeoutEnv(cfg, MethodRequestAccounts, "YEARDOTS_WALLET_REQUEST_ACCOUNTS_TIMEOUT_MS")
	applyMethodTimeoutEnv(cfg, MethodSendTransaction, "YEARDOTS_WALLET_SEND_TIMEOUT_MS")
}

func applyMethodTimeoutEnv(cfg *Config, m Method, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	if cfg.MethodTimeouts == nil {
		cfg.MethodTimeouts = make(map[Method]int)
	}
	cfg.MethodTimeouts[m] = n
}
