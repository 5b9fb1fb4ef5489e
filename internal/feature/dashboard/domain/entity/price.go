package entity

import "time"

// PricePoint is one OHLCV observation of a price series.
type PricePoint struct {
	Time   time.Time // Start of the sampling interval
	Open   float64   // Opening price
	High   float64   // Highest price during the interval
	Low    float64   // Lowest price during the interval
	Close  float64   // Closing price
	Volume int64     // Trading volume
}

// PriceSeries is ordered by Time ascending. An empty series means no data for the period.
type PriceSeries []PricePoint

// Latest returns the most recent observation. ok is false for an empty series.
func (s PriceSeries) Latest() (p PricePoint, ok bool) {
	if len(s) == 0 {
		return PricePoint{}, false
	}
	return s[len(s)-1], true
}

// Closes returns the closing prices in series order.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, 0, len(s))
	for _, p := range s {
		out = append(out, p.Close)
	}
	return out
}
