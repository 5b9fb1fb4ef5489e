// Package dto defines data transfer objects for the dashboard HTTP API.
package dto

// PricePointResponse is one bar of the price series.
type PricePointResponse struct {
	Time   string  `json:"time"` // RFC3339
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// MetricsResponse holds the figures derived from the latest bar.
type MetricsResponse struct {
	Current       float64 `json:"current"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Volume        int64   `json:"volume"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percent_change"`
	Polarity      string  `json:"polarity"`
}

// ArticleResponse is a news item.
type ArticleResponse struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at,omitempty"` // 2006-01-02
	Description string `json:"description,omitempty"`
}

// DashboardResponse is the JSON rendition of the dashboard page.
type DashboardResponse struct {
	Ticker            string               `json:"ticker"`
	Label             string               `json:"label"`
	Range             string               `json:"range"`
	Interval          string               `json:"interval"`
	MarketUnavailable bool                 `json:"market_unavailable"`
	Metrics           *MetricsResponse     `json:"metrics,omitempty"`
	Series            []PricePointResponse `json:"series"`
	NewsUnavailable   bool                 `json:"news_unavailable"`
	Articles          []ArticleResponse    `json:"articles"`
}

// TickerItem represents a selectable ticker.
type TickerItem struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// ErrorResponse is returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
