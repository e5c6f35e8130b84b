package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusware/portal-api/internal/service"
	"github.com/campusware/portal-api/pkg/response"
)

// ConfigHandler exposes the student-visible portal config.
type ConfigHandler struct {
	config *service.ConfigService
}

// NewConfigHandler creates a new handler.
func NewConfigHandler(config *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{config: config}
}

// Public godoc
// @Summary Active semester, deadline and unit caps
// @Tags Config
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /config [get]
func (h *ConfigHandler) Public(c *gin.Context) {
	cfg, err := h.config.Public(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, cfg)
}
