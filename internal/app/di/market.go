// Package di provides dependency injection factories for creating application components.
package di

import (
	"stock_dashboard/internal/feature/dashboard/usecase"
	"stock_dashboard/internal/platform/config"
	"stock_dashboard/internal/platform/externalapi/newsapi"
	"stock_dashboard/internal/platform/externalapi/yahoo"
	infrahttp "stock_dashboard/internal/platform/http"
)

// NewMarket creates a Yahoo Finance market repository with its own HTTP client.
func NewMarket(cfg *config.Config) *yahoo.YahooMarket {
	httpClient := infrahttp.NewHTTPClient(cfg.Market.Timeout, cfg.HTTP.Proxy)
	return yahoo.NewYahooMarket(cfg.Market, httpClient)
}

// NewNews creates a NewsAPI repository with its own HTTP client.
func NewNews(cfg *config.Config) *newsapi.NewsAPIClient {
	httpClient := infrahttp.NewHTTPClient(cfg.News.Timeout, cfg.HTTP.Proxy)
	return newsapi.NewNewsAPIClient(cfg.News, httpClient)
}

// NewDashboardUsecase wires the dashboard usecase to the configured providers.
func NewDashboardUsecase(cfg *config.Config) *usecase.DashboardUsecase {
	return usecase.NewDashboardUsecase(NewMarket(cfg), NewNews(cfg))
}
