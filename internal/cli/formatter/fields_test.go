package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFields_AlignsValues(t *testing.T) {
	out := stripANSI(RenderFields([]Field{
		{"Day of year", Bold("75 / 366")},
		{"Leap year", "yes"},
		{"Empty", ""},
	}))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{
		"  Day of year  75 / 366",
		"  Leap year    yes",
		"  Empty        ",
	}, lines)
}

func TestRenderFields_Empty(t *testing.T) {
	assert.Empty(t, RenderFields(nil))
}
