package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"stock_dashboard/internal/feature/dashboard/domain/entity"
	"stock_dashboard/internal/feature/dashboard/usecase"
	"stock_dashboard/internal/platform/externalapi/newsapi/dto"
)

// NewsAPIClient はNewsAPIから銘柄に関するニュースを取得するNewsRepository実装です。
type NewsAPIClient struct {
	cfg    Config
	client *http.Client
}

var _ usecase.NewsRepository = (*NewsAPIClient)(nil)

// NewNewsAPIClient は指定された設定とHTTPクライアントでNewsAPIClientを生成します。
func NewNewsAPIClient(cfg Config, client *http.Client) *NewsAPIClient {
	cfg.applyDefaults()
	return &NewsAPIClient{cfg: cfg, client: client}
}

// GetArticles は銘柄シンボルで検索した記事を公開日時順で取得し、先頭の entity.MaxArticles 件を返します。
// 200以外のステータスは *UnavailableError として返します。
func (n *NewsAPIClient) GetArticles(ctx context.Context, symbol string) ([]entity.Article, error) {
	q := url.Values{}
	q.Set("q", symbol)
	q.Set("sortBy", "publishedAt")
	q.Set("apiKey", n.cfg.APIKey)

	u := fmt.Sprintf("%s/v2/everything?%s", n.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := n.client.Do(req)
	if err != nil {
		// *url.Error のメッセージにはリクエストURL（apiKey付き）が含まれるため伏せる
		var ue *url.Error
		if errors.As(err, &ue) {
			ue.URL = redactKey(ue.URL)
		}
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return nil, &UnavailableError{StatusCode: res.StatusCode}
	}

	var body dto.EverythingResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	items := body.Articles
	if len(items) > entity.MaxArticles {
		items = items[:entity.MaxArticles]
	}

	articles := make([]entity.Article, 0, len(items))
	for _, a := range items {
		publishedAt, err := time.Parse(time.RFC3339, a.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}
		articles = append(articles, entity.Article{
			Title:       a.Title,
			URL:         a.URL,
			SourceName:  a.Source.Name,
			PublishedAt: publishedAt,
			Description: a.Description,
		})
	}
	return articles, nil
}

// redactKey replaces the apiKey query value of raw with "REDACTED".
func redactKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "REDACTED"
	}
	q := u.Query()
	if q.Has("apiKey") {
		q.Set("apiKey", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
