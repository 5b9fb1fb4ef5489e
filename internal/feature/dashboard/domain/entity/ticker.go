// Package entity defines the domain models for the dashboard feature.
package entity

import (
	"fmt"
	"strings"

	"stock_dashboard/internal/feature/dashboard/domain"
)

// Ticker is one of the fixed set of equities shown on the dashboard.
type Ticker int

const (
	TickerApple Ticker = iota
	TickerTesla
	TickerGoogle
	TickerAmazon
	TickerMicrosoft
)

// DefaultTicker is selected when the request does not name a ticker.
const DefaultTicker = TickerApple

// Tickers returns the selectable tickers in display order.
func Tickers() []Ticker {
	return []Ticker{TickerApple, TickerTesla, TickerGoogle, TickerAmazon, TickerMicrosoft}
}

// Symbol returns the exchange symbol of the ticker (e.g., "AAPL").
func (t Ticker) Symbol() string {
	switch t {
	case TickerApple:
		return "AAPL"
	case TickerTesla:
		return "TSLA"
	case TickerGoogle:
		return "GOOGL"
	case TickerAmazon:
		return "AMZN"
	case TickerMicrosoft:
		return "MSFT"
	}
	panic(fmt.Sprintf("entity: invalid ticker %d", int(t)))
}

// Name returns the company name without the symbol.
func (t Ticker) Name() string {
	switch t {
	case TickerApple:
		return "Apple"
	case TickerTesla:
		return "Tesla"
	case TickerGoogle:
		return "Google"
	case TickerAmazon:
		return "Amazon"
	case TickerMicrosoft:
		return "Microsoft"
	}
	panic(fmt.Sprintf("entity: invalid ticker %d", int(t)))
}

// Label returns the human-readable selector label, e.g. "Apple (AAPL)".
func (t Ticker) Label() string {
	return fmt.Sprintf("%s (%s)", t.Name(), t.Symbol())
}

func (t Ticker) String() string { return t.Label() }

// ParseTicker resolves a selector label or a bare symbol to a Ticker.
// Matching is case-insensitive. An empty string yields DefaultTicker.
func ParseTicker(s string) (Ticker, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTicker, nil
	}
	for _, t := range Tickers() {
		if strings.EqualFold(s, t.Symbol()) || strings.EqualFold(s, t.Label()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrUnknownTicker, s)
}
