package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusware/portal-api/internal/middleware"
	"github.com/campusware/portal-api/internal/service"
	appErrors "github.com/campusware/portal-api/pkg/errors"
	"github.com/campusware/portal-api/pkg/response"
)

// AdminHandler serves the admin oversight endpoints.
type AdminHandler struct {
	registration *service.RegistrationService
	students     *service.StudentService
	dashboard    *service.DashboardService
	tokens       *service.TokenService
	config       *service.ConfigService
	audit        *service.AuditService
}

// NewAdminHandler creates a new handler.
func NewAdminHandler(registration *service.RegistrationService, students *service.StudentService, dashboard *service.DashboardService, tokens *service.TokenService, config *service.ConfigService, audit *service.AuditService) *AdminHandler {
	return &AdminHandler{
		registration: registration,
		students:     students,
		dashboard:    dashboard,
		tokens:       tokens,
		config:       config,
		audit:        audit,
	}
}

// Dashboard godoc
// @Summary Roster statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.dashboard.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}

// Students godoc
// @Summary List students, filtered by department and level
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/students [get]
func (h *AdminHandler) Students(c *gin.Context) {
	filter := service.StudentFilter{
		Department: c.Query("department"),
		Level:      c.Query("level"),
	}
	students, err := h.students.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// ExportStudents godoc
// @Summary Download the filtered roster as CSV
// @Tags Admin
// @Produce text/csv
// @Success 200 {file} binary
// @Router /admin/students/export [get]
func (h *AdminHandler) ExportStudents(c *gin.Context) {
	filter := service.StudentFilter{
		Department: c.Query("department"),
		Level:      c.Query("level"),
	}
	data, err := h.students.ExportCSV(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=students.csv")
	c.Data(http.StatusOK, "text/csv", data)
}

// Approve godoc
// @Summary Approve a registration
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/approve/{matric}/{semester} [post]
func (h *AdminHandler) Approve(c *gin.Context) {
	h.setStatus(c, h.registration.Approve, "registration approved")
}

// Reject godoc
// @Summary Reject a registration
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/reject/{matric}/{semester} [post]
func (h *AdminHandler) Reject(c *gin.Context) {
	h.setStatus(c, h.registration.Reject, "registration rejected")
}

// DeleteRegistration godoc
// @Summary Clear a registration so the student can resubmit
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/delete-registration/{matric}/{semester} [delete]
func (h *AdminHandler) DeleteRegistration(c *gin.Context) {
	h.setStatus(c, h.registration.DeleteRegistration, "registration deleted")
}

func (h *AdminHandler) setStatus(c *gin.Context, op func(ctx context.Context, actor, matric, semester string) error, message string) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	matric := pathParam(c, "matric")
	semester := pathParam(c, "semester")
	if err := op(c.Request.Context(), claims.MatricNumber, matric, semester); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Envelope{Message: message})
}

// UpdateConfig godoc
// @Summary Partially update portal config
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/config [put]
func (h *AdminHandler) UpdateConfig(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid config payload"))
		return
	}

	if err := h.config.Update(c.Request.Context(), claims.MatricNumber, req); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Envelope{Message: "config updated"})
}

// GenerateToken godoc
// @Summary Issue a carryover or late registration token
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/generate-token [post]
func (h *AdminHandler) GenerateToken(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid token payload"))
		return
	}

	result, err := h.tokens.Issue(c.Request.Context(), claims.MatricNumber, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Logs godoc
// @Summary Read the audit trail
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/logs [get]
func (h *AdminHandler) Logs(c *gin.Context) {
	entries, err := h.audit.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries)
}
