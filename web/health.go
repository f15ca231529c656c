package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports that the application is able to serve requests.
type HealthHandler struct{}

func (h *HealthHandler) Route() (string, string) {
	return http.MethodGet, "/health"
}

func (h *HealthHandler) ServeHTTP(ctx *gin.Context) error {
	ctx.JSON(http.StatusOK, gin.H{"status": "UP"})
	return nil
}
