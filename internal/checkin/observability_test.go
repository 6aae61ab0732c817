package checkin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/alexanderramin/yeardots/internal/testutil"
	"github.com/alexanderramin/yeardots/internal/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)

	obs.OnOperation(context.Background(), Event{
		Op:       OpClaim,
		Mode:     domain.RewardLive,
		From:     domain.PhaseConnected,
		To:       domain.PhaseCompleted,
		Duration: 1500 * time.Millisecond,
		TxHash:   "0xabc",
	})
	obs.OnOperation(context.Background(), Event{
		Op:   OpConnect,
		Mode: domain.RewardMock,
		Err:  fmt.Errorf("%w: declined", wallet.ErrUserRejected),
	})
	obs.OnOperation(context.Background(), Event{
		Op:   OpConnect,
		Mode: domain.RewardMock,
		Err:  errors.New("boom"),
	})

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=checkin op=claim mode=live from=connected to=completed duration_ms=1500 tx_hash=0xabc")
	assert.Contains(t, out, "rejected=true")
	assert.Contains(t, out, "level=ERROR msg=checkin op=connect")
	assert.Contains(t, out, "error=boom")
}

func TestNewLogObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopObserver{}, NewLogObserver(nil))
}

func TestObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopObserver{}, observerOrNoop(nil))
	assert.IsType(t, NoopObserver{}, observerOrNoop([]Observer{nil}))

	rec := &recordingObserver{}
	assert.Same(t, rec, observerOrNoop([]Observer{nil, rec}))
}

func TestController_ObservesPhaseTransitions(t *testing.T) {
	p := testutil.NewFakeProvider()
	obs := &recordingObserver{}
	c := NewController(p, instantMock, obs)

	require.NoError(t, c.Connect(context.Background()))
	require.NoError(t, c.CheckIn(context.Background()))

	require.Len(t, obs.events, 2)
	connect, claim := obs.events[0], obs.events[1]
	assert.Equal(t, domain.PhaseIdle, connect.From)
	assert.Equal(t, domain.PhaseConnected, connect.To)
	assert.Equal(t, domain.PhaseConnected, claim.From)
	assert.Equal(t, domain.PhaseCompleted, claim.To)
	assert.Equal(t, domain.RewardMock, claim.Mode)
	assert.NoError(t, claim.Err)
}

func TestController_ObservesRejection(t *testing.T) {
	p := testutil.NewFakeProvider()
	p.RequestErr = wallet.ErrUserRejected
	obs := &recordingObserver{}
	c := NewController(p, instantMock, obs)

	require.Error(t, c.Connect(context.Background()))

	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Rejected())
	assert.Equal(t, domain.PhaseIdle, obs.events[0].To)
}
