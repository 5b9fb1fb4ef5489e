// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse は /healthz のレスポンスボディです。
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}

// NewHealth はサービスヘルスチェック用の /healthz ハンドラーを返します。
// 外部プロバイダーには問い合わせず、プロセスが応答可能かどうかだけを返します。
func NewHealth(service string, startedAt time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 明示的にキャッシュを防止
		c.Header("Cache-Control", "no-store")

		switch c.Request.Method {
		case http.MethodHead:
			c.Status(http.StatusOK)
		case http.MethodOptions:
			c.Status(http.StatusNoContent)
		default:
			c.JSON(http.StatusOK, HealthResponse{
				Status:  "ok",
				Service: service,
				Uptime:  time.Since(startedAt).Truncate(time.Second).String(),
			})
		}
	}
}
