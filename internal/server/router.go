package server

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// NewRouter はルーティングとミドルウェアを設定した gin.Engine を返します。
func NewRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger())

	api := router.Group("/api/v1")
	{
		api.GET("/health", h.HealthCheck)
		api.POST("/redesign", h.Redesign)
		api.POST("/refine", h.Refine)
		api.POST("/suggestions", h.Suggestions)
		api.GET("/elements/:name/image", h.ElementImage)
		api.GET("/elements/:name/info", h.ElementInfo)
		api.GET("/history", h.ListHistory)
		api.GET("/history/:id", h.GetHistoryItem)
		api.GET("/history/:id/image", h.HistoryImage)
		api.GET("/history/:id/original", h.HistoryOriginalImage)
	}
	return router
}

// RequestLogger はリクエストごとに ID を振り、開始と完了を記録します。
func RequestLogger() gin.HandlerFunc {
	base := slog.With("component", "http")

	return func(c *gin.Context) {
		reqID := uuid.NewString()
		c.Set(requestIDHeader, reqID)
		c.Header(requestIDHeader, reqID)

		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		base.Debug("request started", "reqId", reqID, "method", method, "path", path, "ip", c.ClientIP())

		c.Next()

		status := c.Writer.Status()
		dur := time.Since(start)
		if len(c.Errors) > 0 || status >= 500 {
			base.Error("request failed", "reqId", reqID, "method", method, "path", path, "status", status, "dur", dur.String(), "err", c.Errors.String())
			return
		}
		base.Info("request completed", "reqId", reqID, "method", method, "path", path, "status", status, "dur", dur.String())
	}
}
