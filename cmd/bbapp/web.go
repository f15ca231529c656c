package main

import (
	"log/slog"
	"net/http"

	"github.com/dogmatiq/bbapp/internal/listenport"
	"github.com/dogmatiq/bbapp/web"
	"github.com/dogmatiq/imbue"
	"github.com/gin-gonic/gin"
)

func init() {
	imbue.With2(
		container,
		func(
			ctx imbue.Context,
			port listenport.Port,
			logger *slog.Logger,
		) (http.Handler, error) {
			if !debugEnabled.Value() {
				gin.SetMode(gin.ReleaseMode)
			}

			return web.NewRouter(
				logger.With(
					slog.String("component", "web"),
				),
				&web.IndexHandler{
					Version: version,
					Port:    port,
				},
				&web.HealthHandler{},
			), nil
		},
	)
}
