package entity

// Polarity selects the visual treatment of the price change.
type Polarity string

const (
	// PolarityNeutral is used when the price did not move.
	PolarityNeutral Polarity = "neutral"
	// PolarityDown is used for a falling price.
	PolarityDown Polarity = "down"
	// PolarityOff is used for a rising price. Rising prices share the muted "off" style.
	PolarityOff Polarity = "off"
)

// PolarityOf classifies a price change.
func PolarityOf(change float64) Polarity {
	switch {
	case change == 0:
		return PolarityNeutral
	case change < 0:
		return PolarityDown
	default:
		return PolarityOff
	}
}

// Metrics are the figures derived from the latest observation of a series.
type Metrics struct {
	Current       float64
	Open          float64
	High          float64
	Low           float64
	Volume        int64
	Change        float64
	PercentChange float64
	Polarity      Polarity
}

// ComputeMetrics derives the dashboard metrics from the last point of the series.
// ok is false for an empty series and no computation takes place.
func ComputeMetrics(s PriceSeries) (m Metrics, ok bool) {
	latest, ok := s.Latest()
	if !ok {
		return Metrics{}, false
	}
	change := latest.Close - latest.Open
	var pct float64
	// open == 0 の場合は変化率を0として扱う（ゼロ除算を避ける）
	if latest.Open != 0 {
		pct = change / latest.Open * 100
	}
	return Metrics{
		Current:       latest.Close,
		Open:          latest.Open,
		High:          latest.High,
		Low:           latest.Low,
		Volume:        latest.Volume,
		Change:        change,
		PercentChange: pct,
		Polarity:      PolarityOf(change),
	}, true
}
