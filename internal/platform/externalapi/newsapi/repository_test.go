package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// articlesPayload はn件の記事を含むレスポンスを生成します。
func articlesPayload(n int) map[string]any {
	articles := make([]map[string]any, 0, n)
	for i := 0; i < n; i++ {
		articles = append(articles, map[string]any{
			"source":      map[string]any{"id": nil, "name": fmt.Sprintf("Source %d", i)},
			"author":      "Jane Doe",
			"title":       fmt.Sprintf("Headline %d", i),
			"description": fmt.Sprintf("Description %d", i),
			"url":         fmt.Sprintf("https://example.com/%d", i),
			"publishedAt": "2025-01-15T13:45:00Z",
		})
	}
	return map[string]any{"status": "ok", "totalResults": n, "articles": articles}
}

func TestNewsAPIClient_GetArticles_TruncatesToFive(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/everything", r.URL.Path)
		assert.Equal(t, "AAPL", r.URL.Query().Get("q"))
		assert.Equal(t, "publishedAt", r.URL.Query().Get("sortBy"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(articlesPayload(7))
	}))
	defer srv.Close()

	client := NewNewsAPIClient(Config{APIKey: "test-key", BaseURL: srv.URL}, srv.Client())

	articles, err := client.GetArticles(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, articles, 5)

	for i, a := range articles {
		assert.Equal(t, fmt.Sprintf("Headline %d", i), a.Title)
		assert.Equal(t, fmt.Sprintf("Source %d", i), a.SourceName)
		assert.Equal(t, fmt.Sprintf("https://example.com/%d", i), a.URL)
		assert.Equal(t, fmt.Sprintf("Description %d", i), a.Description)
		assert.Equal(t, time.Date(2025, 1, 15, 13, 45, 0, 0, time.UTC), a.PublishedAt)
	}
}

func TestNewsAPIClient_GetArticles_FewerThanFive(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(articlesPayload(2))
	}))
	defer srv.Close()

	client := NewNewsAPIClient(Config{BaseURL: srv.URL}, srv.Client())

	articles, err := client.GetArticles(context.Background(), "TSLA")
	require.NoError(t, err)
	assert.Len(t, articles, 2)
}

func TestNewsAPIClient_GetArticles_MissingDescriptionAndBadDate(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","articles":[{"source":{"name":"Reuters"},"title":"T","url":"https://example.com","publishedAt":"yesterday","description":null}]}`))
	}))
	defer srv.Close()

	client := NewNewsAPIClient(Config{BaseURL: srv.URL}, srv.Client())

	articles, err := client.GetArticles(context.Background(), "MSFT")
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Empty(t, articles[0].Description)
	assert.True(t, articles[0].PublishedAt.IsZero())
}

func TestNewsAPIClient_GetArticles_NonOKStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"unauthorized", http.StatusUnauthorized},
		{"not found", http.StatusNotFound},
		{"too many requests", http.StatusTooManyRequests},
		{"internal server error", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid"}`))
			}))
			defer srv.Close()

			client := NewNewsAPIClient(Config{BaseURL: srv.URL}, srv.Client())

			articles, err := client.GetArticles(context.Background(), "AAPL")
			assert.Nil(t, articles)

			var ue *UnavailableError
			require.True(t, errors.As(err, &ue), "expected *UnavailableError, got %v", err)
			assert.Equal(t, tt.statusCode, ue.StatusCode)
			assert.True(t, ue.Unavailable())
		})
	}
}

func TestNewsAPIClient_GetArticles_InvalidJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{invalid json`))
	}))
	defer srv.Close()

	client := NewNewsAPIClient(Config{BaseURL: srv.URL}, srv.Client())

	_, err := client.GetArticles(context.Background(), "AAPL")
	require.Error(t, err)

	var ue *UnavailableError
	assert.False(t, errors.As(err, &ue))
}

func TestNewsAPIClient_GetArticles_TransportErrorHidesKey(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close() // 接続拒否を発生させる

	client := NewNewsAPIClient(Config{APIKey: "SUPER-SECRET-KEY", BaseURL: baseURL}, &http.Client{Timeout: time.Second})

	_, err := client.GetArticles(context.Background(), "AAPL")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "SUPER-SECRET-KEY")
	assert.Contains(t, err.Error(), "apiKey=REDACTED")

	var ue *UnavailableError
	assert.False(t, errors.As(err, &ue))
}

func TestRedactKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "http://news.local/v2/everything?apiKey=REDACTED&q=AAPL",
		redactKey("http://news.local/v2/everything?apiKey=secret&q=AAPL"))
	assert.Equal(t, "http://news.local/v2/everything?q=AAPL", redactKey("http://news.local/v2/everything?q=AAPL"))
}

func TestNewNewsAPIClient_Defaults(t *testing.T) {
	t.Parallel()

	client := NewNewsAPIClient(Config{APIKey: "k"}, &http.Client{})
	assert.Equal(t, "k", client.cfg.APIKey)
	assert.Equal(t, DefaultBaseURL, client.cfg.BaseURL)
	assert.Zero(t, client.cfg.Timeout)
}
