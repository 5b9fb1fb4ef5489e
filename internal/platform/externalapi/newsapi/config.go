// Package newsapi はNewsAPI（https://newsapi.org）のeverythingエンドポイント用クライアントを提供します。
package newsapi

import "time"

// DefaultBaseURL はNewsAPIのベースURLです。
const DefaultBaseURL = "https://newsapi.org"

// Config はNewsAPIクライアントの設定を保持します。
type Config struct {
	APIKey  string        `yaml:"api_key"`  // 認証用APIキー（環境変数 NEWS_API_KEY から供給する）
	BaseURL string        `yaml:"base_url"` // APIのベースURL
	Timeout time.Duration `yaml:"timeout"`  // HTTPリクエストタイムアウト
}

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
}
