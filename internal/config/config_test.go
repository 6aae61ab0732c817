package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/alexanderramin/yeardots/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, domain.RewardMock, cfg.CheckIn.Mode)
	assert.Equal(t, 1500*time.Millisecond, cfg.CheckIn.MockDelay)
	assert.Equal(t, 10, cfg.CheckIn.MockAmount)
	assert.Equal(t, time.Second, cfg.Display.TickInterval)
	assert.False(t, cfg.Wallet.Enabled())
	assert.Equal(t, wallet.DefaultContract, cfg.Wallet.Contract)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfig(t, `
wallet:
  endpoint: http://127.0.0.1:8545
  method_timeouts_ms:
    eth_sendTransaction: 60000
checkin:
  mode: live
  mock_delay: 250ms
display:
  locale: zh-CN
  timezone: UTC
  tick_interval: 2s
log:
  file: /tmp/yeardots.log
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8545", cfg.Wallet.Endpoint)
	assert.Equal(t, 60000, cfg.Wallet.MethodTimeout(wallet.MethodSendTransaction))
	assert.Equal(t, domain.RewardLive, cfg.CheckIn.Mode)
	assert.Equal(t, 250*time.Millisecond, cfg.CheckIn.MockDelay)
	assert.Equal(t, domain.LocaleZH, cfg.Locale())
	assert.Equal(t, 2*time.Second, cfg.Display.TickInterval)
	assert.Equal(t, "/tmp/yeardots.log", cfg.Log.File)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "checkin:\n  mode: live\n")
	t.Setenv("YEARDOTS_CHECKIN_MODE", "mock")
	t.Setenv("YEARDOTS_TICK_MS", "500")
	t.Setenv("YEARDOTS_WALLET_ENDPOINT", "http://wallet.local")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.RewardMock, cfg.CheckIn.Mode)
	assert.Equal(t, 500*time.Millisecond, cfg.Display.TickInterval)
	assert.Equal(t, "http://wallet.local", cfg.Wallet.Endpoint)
}

func TestLoad_InvalidMode(t *testing.T) {
	path := writeConfig(t, "checkin:\n  mode: airdrop\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "checkin.mode")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "checkin: [unterminated\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoad_UnknownTimezone(t *testing.T) {
	t.Setenv("YEARDOTS_TZ", "Mars/Olympus_Mons")

	_, err := Load("")
	assert.ErrorContains(t, err, "display.timezone")
}

func TestDefaultPath_Env(t *testing.T) {
	t.Setenv("YEARDOTS_CONFIG", "/etc/yeardots.yaml")
	assert.Equal(t, "/etc/yeardots.yaml", DefaultPath())
}

func TestOpenLog(t *testing.T) {
	cfg := DefaultConfig()
	w, err := cfg.OpenLog()
	require.NoError(t, err)
	_, err = w.Write([]byte("discarded"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	cfg.Log.File = filepath.Join(t.TempDir(), "logs", "yeardots.log")
	w, err = cfg.OpenLog()
	require.NoError(t, err)
	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}
