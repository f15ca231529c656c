package web

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// logRequests returns middleware that logs each request after it has been
// handled.
func logRequests(logger *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		level := slog.LevelDebug
		if ctx.Writer.Status() >= 500 {
			level = slog.LevelWarn
		}

		logger.LogAttrs(
			ctx,
			level,
			"handled HTTP request",
			slog.String("method", ctx.Request.Method),
			slog.String("path", ctx.Request.URL.Path),
			slog.Int("status", ctx.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	}
}
