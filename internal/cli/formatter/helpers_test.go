package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderBox(t *testing.T) {
	out := stripANSI(RenderBox("wallet", "connected"))
	assert.Contains(t, out, "WALLET")
	assert.Contains(t, out, "connected")
	assert.True(t, strings.HasPrefix(out, "╭"))

	plain := stripANSI(RenderBox("", "body"))
	assert.NotContains(t, plain, "WALLET")
	assert.Contains(t, plain, "body")
}

func TestNotice(t *testing.T) {
	assert.Empty(t, Notice(""))
	assert.Equal(t, "! Already checked in today.", stripANSI(Notice("Already checked in today.")))
}

func TestModeBadge(t *testing.T) {
	assert.Contains(t, stripANSI(ModeBadge(true)), "LIVE")
	assert.Contains(t, stripANSI(ModeBadge(false)), "MOCK")
}

func TestCenter(t *testing.T) {
	out := Center("ab", 6)
	assert.Equal(t, 6, lipgloss.Width(out))
	assert.Equal(t, "  ab  ", stripANSI(out))
	assert.Equal(t, "ab", Center("ab", 0))
}
