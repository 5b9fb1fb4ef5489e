// Package http は外部プロバイダー呼び出し用のHTTPクライアントを提供します。
package http

import (
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"
)

// NewHTTPClient はYahoo Finance・NewsAPI呼び出し用に設定されたHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: proxyURLが指定されていればそれを使用し、なければ環境変数（HTTPS_PROXYなど）に従う
//   - Dialer.Timeout: TCP接続タイムアウト
//   - IdleConnTimeout / TLSHandshakeTimeout: 接続の維持とハンドシェイクの上限
//   - Client.Timeout: リクエスト全体のタイムアウト（呼び出し元から渡される）
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため使用しない
//   - リトライは行わない（1リクエスト1回の呼び出し）
func NewHTTPClient(timeout time.Duration, proxyURL string) *http.Client {
	proxy := http.ProxyFromEnvironment
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			proxy = http.ProxyURL(u)
		} else {
			slog.Warn("invalid proxy url; falling back to environment", "proxy", proxyURL, "error", err)
		}
	}

	t := &http.Transport{
		Proxy: proxy,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
