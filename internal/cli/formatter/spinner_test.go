package formatter

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSpinner_WritesFramesAndClears(t *testing.T) {
	var buf syncBuffer
	stop := StartSpinner(&buf, "waiting for wallet")

	assert.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "waiting for wallet")
	}, 2*time.Second, 20*time.Millisecond)

	stop()
	stop()
	assert.Contains(t, buf.String(), "\r\033[K")
}

func TestSpinnerFrame_Wraps(t *testing.T) {
	assert.Equal(t, SpinnerFrame(0), SpinnerFrame(len(spinnerFrames)))
}
