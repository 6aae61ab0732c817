package domain

import (
	"strings"
	"time"
)

// Locale selects the language of month and weekday labels.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"
)

var zhMonths = [12]string{
	"一月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "十一月", "十二月",
}

var zhWeekdays = [7]string{
	"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六",
}

// ParseLocale accepts tags such as "zh", "zh-CN" or "en_US". Unknown values
// fall back to English.
func ParseLocale(s string) Locale {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "zh") {
		return LocaleZH
	}
	return LocaleEN
}

func (l Locale) month(m time.Month) string {
	if l == LocaleZH && m >= time.January && m <= time.December {
		return zhMonths[m-1]
	}
	return m.String()
}

func (l Locale) weekday(d time.Weekday) string {
	if l == LocaleZH && d >= time.Sunday && d <= time.Saturday {
		return zhWeekdays[d]
	}
	return d.String()
}

// MonthLabel returns the label for m in this locale.
func (l Locale) MonthLabel(m time.Month) string {
	return l.month(m)
}

// ShortMonthLabel is the compact label used in the month strip.
func (l Locale) ShortMonthLabel(m time.Month) string {
	if l == LocaleZH {
		return l.month(m)
	}
	return m.String()[:3]
}
