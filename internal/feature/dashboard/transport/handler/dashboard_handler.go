// Package handler はdashboardフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"stock_dashboard/internal/feature/dashboard/domain/entity"
	"stock_dashboard/internal/feature/dashboard/transport/http/dto"
	"stock_dashboard/internal/feature/dashboard/transport/view"
	"stock_dashboard/internal/feature/dashboard/usecase"
)

// DashboardUsecase はダッシュボード組み立てのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type DashboardUsecase interface {
	Build(ctx context.Context, sel entity.Selection) (*usecase.Dashboard, error)
}

// DashboardHandler はダッシュボードのHTTPリクエストを処理します。
type DashboardHandler struct {
	uc DashboardUsecase
}

// NewDashboardHandler は指定されたusecaseでDashboardHandlerの新しいインスタンスを生成します。
func NewDashboardHandler(uc DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Page はダッシュボードのHTMLページを返します。
//
// エンドポイント例:
// GET /?ticker=AAPL&range=1mo
func (h *DashboardHandler) Page(c *gin.Context) {
	sel, err := parseSelection(c.Query("ticker"), c.Query("range"))
	if err != nil {
		c.HTML(http.StatusBadRequest, view.ErrorTemplate, gin.H{"Message": err.Error()})
		return
	}

	d, err := h.uc.Build(c.Request.Context(), sel)
	if err != nil {
		slog.Error("failed to build dashboard", "ticker", sel.Ticker.Symbol(), "range", sel.Range, "error", err)
		c.HTML(http.StatusBadGateway, view.ErrorTemplate, gin.H{"Message": "upstream provider error"})
		return
	}

	c.HTML(http.StatusOK, view.DashboardTemplate, view.NewPage(d))
}

// Dashboard はダッシュボードの内容をJSONで返します。
//
// エンドポイント例:
// GET /api/dashboard?ticker=TSLA&range=5d
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	var tickerParam, rangeParam string
	q := c.Request.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "ticker", q, &tickerParam); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "range", q, &rangeParam); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sel, err := parseSelection(tickerParam, rangeParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	d, err := h.uc.Build(c.Request.Context(), sel)
	if err != nil {
		slog.Error("failed to build dashboard", "ticker", sel.Ticker.Symbol(), "range", sel.Range, "error", err)
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "upstream provider error"})
		return
	}

	c.JSON(http.StatusOK, toResponse(d))
}

// Tickers は選択可能な銘柄の一覧を表示順で返します。
func (h *DashboardHandler) Tickers(c *gin.Context) {
	out := make([]dto.TickerItem, 0, len(entity.Tickers()))
	for _, t := range entity.Tickers() {
		out = append(out, dto.TickerItem{Code: t.Symbol(), Name: t.Label()})
	}
	c.JSON(http.StatusOK, out)
}

func parseSelection(tickerParam, rangeParam string) (entity.Selection, error) {
	t, err := entity.ParseTicker(tickerParam)
	if err != nil {
		return entity.Selection{}, err
	}
	r, err := entity.ParseRange(rangeParam)
	if err != nil {
		return entity.Selection{}, err
	}
	return entity.Selection{Ticker: t, Range: r}, nil
}

func toResponse(d *usecase.Dashboard) dto.DashboardResponse {
	out := dto.DashboardResponse{
		Ticker:            d.Symbol,
		Label:             d.Selection.Ticker.Label(),
		Range:             string(d.Selection.Range),
		Interval:          d.Interval,
		MarketUnavailable: d.MarketUnavailable,
		Series:            make([]dto.PricePointResponse, 0, len(d.Series)),
		NewsUnavailable:   d.NewsUnavailable,
		Articles:          make([]dto.ArticleResponse, 0, len(d.Articles)),
	}
	if !d.MarketUnavailable {
		m := d.Metrics
		out.Metrics = &dto.MetricsResponse{
			Current:       m.Current,
			Open:          m.Open,
			High:          m.High,
			Low:           m.Low,
			Volume:        m.Volume,
			Change:        m.Change,
			PercentChange: m.PercentChange,
			Polarity:      string(m.Polarity),
		}
	}
	for _, p := range d.Series {
		out.Series = append(out.Series, dto.PricePointResponse{
			Time:   p.Time.UTC().Format(time.RFC3339),
			Open:   p.Open,
			High:   p.High,
			Low:    p.Low,
			Close:  p.Close,
			Volume: p.Volume,
		})
	}
	for _, a := range d.Articles {
		out.Articles = append(out.Articles, dto.ArticleResponse{
			Title:       a.Title,
			URL:         a.URL,
			Source:      a.SourceName,
			PublishedAt: view.Date(a.PublishedAt),
			Description: a.Description,
		})
	}
	return out
}
