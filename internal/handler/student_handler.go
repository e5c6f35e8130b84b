package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusware/portal-api/internal/middleware"
	"github.com/campusware/portal-api/internal/service"
	appErrors "github.com/campusware/portal-api/pkg/errors"
	"github.com/campusware/portal-api/pkg/export"
	"github.com/campusware/portal-api/pkg/response"
)

// StudentHandler serves the student-facing registration endpoints.
type StudentHandler struct {
	registration *service.RegistrationService
	students     *service.StudentService
	tokens       *service.TokenService
	config       *service.ConfigService
	forms        *export.CourseFormExporter
}

// NewStudentHandler creates a new handler.
func NewStudentHandler(registration *service.RegistrationService, students *service.StudentService, tokens *service.TokenService, config *service.ConfigService, forms *export.CourseFormExporter) *StudentHandler {
	return &StudentHandler{registration: registration, students: students, tokens: tokens, config: config, forms: forms}
}

// Profile godoc
// @Summary Get own profile
// @Tags Student
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /student/profile [get]
func (h *StudentHandler) Profile(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	profile, err := h.students.Profile(c.Request.Context(), claims.MatricNumber)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

// RegisterCourses godoc
// @Summary Submit course registration for the active semester
// @Tags Student
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /student/register-courses [post]
func (h *StudentHandler) RegisterCourses(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.SubmitRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid registration payload"))
		return
	}

	result, err := h.registration.Submit(c.Request.Context(), claims.MatricNumber, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// RegisteredCourses godoc
// @Summary View own registration for a semester
// @Tags Student
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /student/registered-courses/{semester} [get]
func (h *StudentHandler) RegisteredCourses(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	result, err := h.registration.Registered(c.Request.Context(), claims.MatricNumber, pathParam(c, "semester"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// ValidateToken godoc
// @Summary Redeem an override token
// @Tags Student
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /student/validate-token [post]
func (h *StudentHandler) ValidateToken(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "token required"))
		return
	}

	result, err := h.tokens.Redeem(c.Request.Context(), claims.MatricNumber, req.Token)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// CourseForm godoc
// @Summary Download the registration form as PDF
// @Tags Student
// @Produce application/pdf
// @Success 200 {file} binary
// @Router /student/course-form/{semester} [get]
func (h *StudentHandler) CourseForm(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	semester := pathParam(c, "semester")
	signatures, err := h.config.Signatures(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	form, err := h.students.CourseForm(c.Request.Context(), claims.MatricNumber, semester, signatures)
	if err != nil {
		response.Error(c, err)
		return
	}

	pdf, err := h.forms.Render(*form)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to render course form"))
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+service.FilenameForForm(claims.MatricNumber, semester))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
