package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45.21%.
// pct is a percentage in [0, 100]; values outside are clamped.
func RenderProgress(pct float64, width int) string {
	return fmt.Sprintf("[%s] %6.2f%%", RenderCompactBar(pct, width, false), clampPct(pct))
}

// RenderCompactBar renders only the blocks, without brackets or label.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clampPct(pct)
	if width < 2 {
		width = 2
	}

	filled := int(pct / 100 * float64(width))
	filled = min(filled, width)
	empty := width - filled

	if dim {
		return StyleDim.Render(strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty))
	}
	return StyleHeader.Render(strings.Repeat(filledBlock, filled)) + StyleFaint.Render(strings.Repeat(emptyBlock, empty))
}

func clampPct(pct float64) float64 {
	return min(max(pct, 0), 100)
}
