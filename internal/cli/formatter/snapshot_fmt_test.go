package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/yeardots/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatSnapshot(t *testing.T) {
	out := stripANSI(FormatSnapshot(march15(), domain.LocaleEN, 31))

	assert.Contains(t, out, "YEAR 2024")
	assert.Contains(t, out, "2024-03-15 Friday")
	assert.Contains(t, out, "75 / 366")
	assert.Contains(t, out, "20.49%")
	assert.Contains(t, out, "79.51%")
	assert.Contains(t, out, "291")
	assert.Contains(t, out, "Leap year")
	assert.Contains(t, out, " Mar ")
	assert.True(t, strings.HasPrefix(out, "╭"), "fields are boxed")
	assert.Contains(t, out, "│  YEAR 2024")
}

func TestFormatDateLine_Chinese(t *testing.T) {
	out := stripANSI(FormatDateLine(march15(), domain.LocaleZH))
	assert.Equal(t, "15 三月 2024\n星期五", out)
}

func TestFormatDayCounter(t *testing.T) {
	assert.Equal(t, "Day 75 / 366", stripANSI(FormatDayCounter(march15())))
}

func TestFormatStats_LastDay(t *testing.T) {
	s := domain.DeriveSnapshot(time.Date(2023, time.December, 31, 9, 0, 0, 0, time.UTC))
	out := stripANSI(FormatStats(s))
	assert.Contains(t, out, "100.00% elapsed")
	assert.Contains(t, out, "0.00% remaining")
	assert.Contains(t, out, "last day of the year")
	assert.NotContains(t, out, "0 days left")
}

func TestFormatStats_SingularDay(t *testing.T) {
	s := domain.DeriveSnapshot(time.Date(2023, time.December, 30, 9, 0, 0, 0, time.UTC))
	assert.Contains(t, stripANSI(FormatStats(s)), "1 day left")
}
