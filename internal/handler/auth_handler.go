package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/internal/service"
	appErrors "github.com/campusware/portal-api/pkg/errors"
	"github.com/campusware/portal-api/pkg/response"
	"github.com/campusware/portal-api/pkg/storage"
)

// AuthHandler wires signup, login and the admin bootstrap endpoint.
type AuthHandler struct {
	service *service.AuthService
	photos  *storage.Uploads
	logger  *zap.Logger
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, photos *storage.Uploads, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{service: svc, photos: photos, logger: logger}
}

// Register godoc
// @Summary Register student account
// @Tags Auth
// @Accept mpfd
// @Produce json
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterStudentRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid registration payload"))
		return
	}

	photoPath := ""
	if file, err := c.FormFile("photo"); err == nil && file != nil {
		stored, err := h.photos.SaveMultipart(req.MatricNumber, file)
		if err != nil {
			h.logger.Warn("failed to store student photo", zap.Error(err))
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to store photo"))
			return
		}
		photoPath = stored
	}

	if err := h.service.RegisterStudent(c.Request.Context(), req, photoPath); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, nil, "registration successful")
}

// Login godoc
// @Summary Authenticate student or admin
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "matric number and password required"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, res)
}

// CreateAdmin godoc
// @Summary Bootstrap an admin account
// @Description Unauthenticated bootstrap endpoint; duplicate matric numbers are rejected.
// @Tags Auth
// @Accept json
// @Produce json
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /create-admin [post]
func (h *AuthHandler) CreateAdmin(c *gin.Context) {
	var req models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid admin payload"))
		return
	}

	if err := h.service.CreateAdmin(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, nil, "admin created")
}
