// Package usecase はダッシュボード表示のビジネスロジックを実装します。
package usecase

import (
	"context"
	"errors"
	"log/slog"

	"stock_dashboard/internal/feature/dashboard/domain/entity"
)

// MarketRepository は株価の時系列データを取得するリポジトリのインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type MarketRepository interface {
	GetPriceSeries(ctx context.Context, symbol, period, interval string) (entity.PriceSeries, error)
}

// NewsRepository は銘柄に関するニュースを取得するリポジトリのインターフェイスです。
type NewsRepository interface {
	GetArticles(ctx context.Context, symbol string) ([]entity.Article, error)
}

// unavailable is implemented by provider errors that mean "answered, but no content for you".
type unavailable interface {
	Unavailable() bool
}

// Dashboard は1回のリクエストで表示する内容です。
type Dashboard struct {
	Selection entity.Selection
	Symbol    string
	Interval  string

	Series            entity.PriceSeries
	Metrics           entity.Metrics // MarketUnavailable のときはゼロ値
	MarketUnavailable bool

	Articles        []entity.Article
	NewsUnavailable bool
}

// DashboardUsecase は銘柄選択から表示データを組み立てます。
type DashboardUsecase struct {
	market MarketRepository
	news   NewsRepository
}

// NewDashboardUsecase は新しい DashboardUsecase を作成します。
func NewDashboardUsecase(market MarketRepository, news NewsRepository) *DashboardUsecase {
	return &DashboardUsecase{market: market, news: news}
}

// Build は株価データ、ニュースの順に取得し、ダッシュボードを組み立てます。
//
// 株価取得のエラーは「データなし」と同じ扱いになります（休場とAPI障害を区別しない）。
// ニュースAPIが200以外を返した場合は NewsUnavailable を立て、記事は空にします。
// それ以外のニュース取得エラー（通信エラー、不正なJSON）は呼び出し元に返します。
func (u *DashboardUsecase) Build(ctx context.Context, sel entity.Selection) (*Dashboard, error) {
	symbol, interval := sel.Resolve()
	d := &Dashboard{
		Selection: sel,
		Symbol:    symbol,
		Interval:  interval,
	}

	series, err := u.market.GetPriceSeries(ctx, symbol, string(sel.Range), interval)
	if err != nil {
		slog.Warn("market data fetch failed; treating as no data",
			"symbol", symbol, "range", sel.Range, "interval", interval, "error", err)
		series = nil
	}
	d.Series = series
	if m, ok := entity.ComputeMetrics(series); ok {
		d.Metrics = m
	} else {
		d.MarketUnavailable = true
	}

	articles, err := u.news.GetArticles(ctx, symbol)
	if err != nil {
		var ue unavailable
		if errors.As(err, &ue) && ue.Unavailable() {
			slog.Warn("news unavailable", "symbol", symbol, "error", err)
			d.NewsUnavailable = true
			return d, nil
		}
		return nil, err
	}
	if len(articles) > entity.MaxArticles {
		articles = articles[:entity.MaxArticles]
	}
	d.Articles = articles

	return d, nil
}
