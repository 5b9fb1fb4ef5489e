package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	dashboardhandler "stock_dashboard/internal/feature/dashboard/transport/handler"
	"stock_dashboard/internal/feature/dashboard/transport/view"
	platformhandler "stock_dashboard/internal/platform/http/handler"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "stock_dashboard"

func NewRouter(dashboard *dashboardhandler.DashboardHandler, allowedOrigins []string, startedAt time.Time) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(view.Templates())

	// 導通確認用
	health := platformhandler.NewHealth(ServiceName, startedAt)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)

	// ダッシュボード画面
	r.GET("/", dashboard.Page)

	// JSON API（フロントエンドから直接呼ぶ場合のみCORSを許可）
	api := r.Group("/api")
	if len(allowedOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins: allowedOrigins,
			AllowMethods: []string{"GET", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Accept"},
			MaxAge:       12 * time.Hour,
		}))
	}
	{
		api.GET("/dashboard", dashboard.Dashboard)
		api.GET("/tickers", dashboard.Tickers)
	}

	return r
}
