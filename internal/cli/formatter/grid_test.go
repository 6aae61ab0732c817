package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestGridColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 30},
		{-5, 30},
		{10, minGridColumns},
		{64, 31},
		{80, 39},
		{500, maxGridColumns},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GridColumns(tt.width), "width %d", tt.width)
	}
}

func TestRenderDotGrid_OneDotPerDay(t *testing.T) {
	s := march15()
	out := stripANSI(RenderDotGrid(s.Cells(), 20))

	assert.Equal(t, 74, strings.Count(out, DotPast))
	assert.Equal(t, 17, strings.Count(out, DotUrgent))
	assert.Equal(t, 275, strings.Count(out, DotFuture))

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 19) // ceil(366/20)
	assert.Equal(t, 6, strings.Count(lines[len(lines)-1], " ")+1)
}

func TestGridWidth_MatchesRenderedRow(t *testing.T) {
	out := stripANSI(RenderDotGrid(march15().Cells(), 20))
	first := strings.Split(out, "\n")[0]

	assert.Equal(t, lipgloss.Width(first), GridWidth(20))
	assert.Equal(t, 1, GridWidth(0))
}

func TestRenderDotGrid_ZeroColumnsStillRenders(t *testing.T) {
	cells := []domain.DayCell{{State: domain.DayPast}, {State: domain.DayFuture}}
	out := stripANSI(RenderDotGrid(cells, 0))
	assert.Equal(t, DotPast+"\n"+DotFuture, out)
}

func TestRenderMonthStrip_Chinese(t *testing.T) {
	s := march15()
	out := stripANSI(RenderMonthStrip(s.Months(), domain.LocaleZH))
	assert.Contains(t, out, " 三月 ")
	assert.Contains(t, out, " 十二月 ")
}

func TestDayGlyph(t *testing.T) {
	assert.Equal(t, DotPast, DayGlyph(domain.DayPast))
	assert.Equal(t, DotUrgent, DayGlyph(domain.DayUrgent))
	assert.Equal(t, DotFuture, DayGlyph(domain.DayFuture))
}
