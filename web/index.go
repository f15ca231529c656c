package web

import (
	"net/http"

	"github.com/dogmatiq/bbapp/internal/listenport"
	"github.com/dogmatiq/bbapp/web/templates"
	"github.com/gin-gonic/gin"
)

// IndexHandler renders the application's landing page.
type IndexHandler struct {
	Version string
	Port    listenport.Port
}

func (h *IndexHandler) Route() (string, string) {
	return http.MethodGet, "/"
}

func (h *IndexHandler) ServeHTTP(ctx *gin.Context) error {
	version := h.Version
	if version == "" {
		version = "dev"
	}

	ctx.HTML(
		http.StatusOK,
		templates.IndexTemplate,
		templates.IndexContext{
			Context: templates.Context{
				Title: "bbapp",
			},
			Version: version,
			Port:    h.Port.String(),
		},
	)

	return nil
}
