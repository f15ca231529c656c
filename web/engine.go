package web

import (
	"log/slog"
	"net/http"

	"github.com/dogmatiq/bbapp/web/templates"
	"github.com/gin-gonic/gin"
)

// Handler is a handler for a single route.
type Handler interface {
	Route() (string, string)
	ServeHTTP(*gin.Context) error
}

// NewRouter returns an [http.Handler] that dispatches requests to the given
// handlers.
func NewRouter(logger *slog.Logger, handlers ...Handler) http.Handler {
	engine := gin.New()
	engine.HTMLRender = templates.NewRenderer()

	engine.Use(
		logRequests(logger),
		gin.Recovery(),
	)

	for _, h := range handlers {
		method, path := h.Route()

		engine.Handle(
			method,
			path,
			wrap(logger, h.ServeHTTP),
		)
	}

	engine.NoRoute(
		func(ctx *gin.Context) {
			renderError(ctx, http.StatusNotFound)
		},
	)

	return engine
}

func wrap(logger *slog.Logger, handle func(*gin.Context) error) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := handle(ctx); err != nil {
			ctx.Error(err) // nolint:errcheck

			logger.ErrorContext(
				ctx,
				"unable to handle request",
				slog.String("path", ctx.Request.URL.Path),
				slog.String("error", err.Error()),
			)

			renderError(ctx, http.StatusInternalServerError)
		}
	}
}

func renderError(ctx *gin.Context, code int) {
	ctx.AbortWithStatusJSON(
		code,
		gin.H{
			"status": code,
			"error":  http.StatusText(code),
		},
	)
}
