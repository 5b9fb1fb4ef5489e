// Package view renders the dashboard page with gin's HTML renderer.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/dustin/go-humanize"

	"stock_dashboard/internal/feature/dashboard/domain/entity"
	"stock_dashboard/internal/feature/dashboard/usecase"
)

// Template names registered by Templates.
const (
	DashboardTemplate = "dashboard.html"
	ErrorTemplate     = "error.html"
)

// Warning messages shown in place of missing data.
const (
	MarketUnavailableMessage = "No data available for the selected period. The market may be closed."
	NewsUnavailableMessage   = "News is currently unavailable."
)

//go:embed templates/*.html
var templateFS embed.FS

// Funcs are the formatting helpers available to the templates.
var Funcs = template.FuncMap{
	"money":   Money,
	"percent": Percent,
	"comma":   humanize.Comma,
	"date":    Date,
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html"))
}

// Money formats a price as "$1234.56". Negative changes render as "$-5.00".
func Money(v float64) string { return fmt.Sprintf("$%.2f", v) }

// Percent formats a percentage with two decimals.
func Percent(v float64) string { return fmt.Sprintf("%.2f%%", v) }

// Date formats a publish date; the zero time renders empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// Option is an entry of a selector widget.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Page is the template model of the dashboard page.
type Page struct {
	Title    string
	Label    string
	Symbol   string
	Tickers  []Option
	Ranges   []Option
	Warning  string
	Metrics  *entity.Metrics
	Chart    LineChart
	News     []entity.Article
	NewsNote string
}

// NewPage builds the template model from a dashboard result.
func NewPage(d *usecase.Dashboard) Page {
	sel := d.Selection
	p := Page{
		Title:  "Daily Stocks Viewer",
		Label:  sel.Ticker.Label(),
		Symbol: d.Symbol,
		News:   d.Articles,
	}
	for _, t := range entity.Tickers() {
		p.Tickers = append(p.Tickers, Option{Value: t.Symbol(), Label: t.Label(), Selected: t == sel.Ticker})
	}
	for _, r := range entity.Ranges() {
		p.Ranges = append(p.Ranges, Option{Value: string(r), Label: string(r), Selected: r == sel.Range})
	}

	if d.MarketUnavailable {
		p.Warning = MarketUnavailableMessage
	} else {
		m := d.Metrics
		p.Metrics = &m
		p.Chart = NewLineChart(d.Series.Closes())
	}
	if d.NewsUnavailable {
		p.NewsNote = NewsUnavailableMessage
	}
	return p
}
