// Package yahoo provides a client for the Yahoo Finance chart API.
package yahoo

import "time"

// DefaultBaseURL is the public Yahoo Finance chart host.
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Config holds configuration for the Yahoo Finance client.
type Config struct {
	BaseURL   string        `yaml:"base_url"`   // Base URL for the API (e.g., "https://query1.finance.yahoo.com")
	UserAgent string        `yaml:"user_agent"` // User-Agent header; the chart API rejects empty agents
	Timeout   time.Duration `yaml:"timeout"`    // HTTP request timeout
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = "Mozilla/5.0"
	}
}
