package entity

import (
	"fmt"
	"strings"

	"stock_dashboard/internal/feature/dashboard/domain"
)

// Range is the historical window requested from the market data provider.
type Range string

const (
	Range1d  Range = "1d"
	Range5d  Range = "5d"
	Range1mo Range = "1mo"
	Range3mo Range = "3mo"
	Range6mo Range = "6mo"
	Range1y  Range = "1y"
)

// DefaultRange is selected when the request does not name a range.
const DefaultRange = Range1d

// Ranges returns the selectable ranges in display order.
func Ranges() []Range {
	return []Range{Range1d, Range5d, Range1mo, Range3mo, Range6mo, Range1y}
}

// Interval returns the sampling granularity used for the range.
// 1日は1分足、5日は5分足、1ヶ月は30分足、それ以上は日足。
func (r Range) Interval() string {
	switch r {
	case Range1d:
		return "1m"
	case Range5d:
		return "5m"
	case Range1mo:
		return "30m"
	case Range3mo, Range6mo, Range1y:
		return "1d"
	}
	panic(fmt.Sprintf("entity: invalid range %q", string(r)))
}

// ParseRange validates a range code. An empty string yields DefaultRange.
func ParseRange(s string) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultRange, nil
	}
	for _, r := range Ranges() {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownRange, s)
}

// Selection is the resolved pair of ticker and range for one dashboard request.
type Selection struct {
	Ticker Ticker
	Range  Range
}

// Resolve maps the selection to the provider parameters (symbol, interval).
func (s Selection) Resolve() (symbol, interval string) {
	return s.Ticker.Symbol(), s.Range.Interval()
}
