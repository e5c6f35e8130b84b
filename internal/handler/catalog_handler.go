package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusware/portal-api/internal/service"
	"github.com/campusware/portal-api/pkg/response"
)

// CatalogHandler serves department course catalogs.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Courses godoc
// @Summary List catalog courses for a department, level and semester
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{department}/{level}/{semester} [get]
func (h *CatalogHandler) Courses(c *gin.Context) {
	courses, err := h.catalog.CoursesFor(
		c.Request.Context(),
		pathParam(c, "department"),
		pathParam(c, "level"),
		pathParam(c, "semester"),
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses)
}
