package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suopuwu/jwt-pizza-service/internal/server/http/dto"
)

// HealthHandler serves service metadata and liveness endpoints.
type HealthHandler struct {
	facade  HealthFacade
	version string
}

// NewHealthHandler constructs HealthHandler reporting version on GET /.
func NewHealthHandler(facade HealthFacade, version string) *HealthHandler {
	return &HealthHandler{facade: facade, version: version}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RootResponse{Message: "welcome to JWT Pizza", Version: h.version})
}

// Health handles GET /healthz.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.facade.HealthCheck(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, dto.MessageResponse{Message: "unavailable"})
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "ok"})
}

// NotFound answers requests to unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "unknown endpoint"})
}
