package view

import (
	"strconv"
	"strings"
)

// Chart dimensions in SVG user units.
const (
	ChartWidth   = 800
	ChartHeight  = 300
	chartPadding = 10
)

// LineChart is a closing-price polyline projected onto a fixed viewBox.
type LineChart struct {
	Width  int
	Height int
	Points string // "x1,y1 x2,y2 ..." for <polyline points>
	Min    float64
	Max    float64
}

// NewLineChart projects values left-to-right onto the chart area. Higher values are drawn nearer the top.
// A constant series is drawn as a horizontal line through the middle.
func NewLineChart(values []float64) LineChart {
	lc := LineChart{Width: ChartWidth, Height: ChartHeight}
	if len(values) == 0 {
		return lc
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	lc.Min, lc.Max = lo, hi

	plotW := float64(ChartWidth - 2*chartPadding)
	plotH := float64(ChartHeight - 2*chartPadding)

	var b strings.Builder
	for i, v := range values {
		x := float64(chartPadding)
		if len(values) > 1 {
			x += plotW * float64(i) / float64(len(values)-1)
		}
		y := float64(chartPadding) + plotH/2
		if hi > lo {
			y = float64(chartPadding) + plotH*(hi-v)/(hi-lo)
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(x, 'f', 1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(y, 'f', 1, 64))
	}
	lc.Points = b.String()
	return lc
}
