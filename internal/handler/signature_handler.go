package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/campusware/portal-api/internal/middleware"
	"github.com/campusware/portal-api/internal/service"
	appErrors "github.com/campusware/portal-api/pkg/errors"
	"github.com/campusware/portal-api/pkg/response"
	"github.com/campusware/portal-api/pkg/storage"
)

// SignatureHandler manages the course form signatories. Students read
// them; admins upsert and delete.
type SignatureHandler struct {
	config *service.ConfigService
	images *storage.Uploads
	logger *zap.Logger
}

// NewSignatureHandler creates a new handler.
func NewSignatureHandler(config *service.ConfigService, images *storage.Uploads, logger *zap.Logger) *SignatureHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SignatureHandler{config: config, images: images, logger: logger}
}

// List godoc
// @Summary List course form signatories
// @Tags Signatures
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /public/signatures [get]
func (h *SignatureHandler) List(c *gin.Context) {
	signatures, err := h.config.Signatures(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, signatures)
}

// Save godoc
// @Summary Upsert a signatory with an optional scanned signature image
// @Tags Signatures
// @Accept mpfd
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/signatures [post]
func (h *SignatureHandler) Save(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.SaveSignatureRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "role and name required"))
		return
	}

	imagePath := ""
	if file, err := c.FormFile("image"); err == nil && file != nil {
		stored, err := h.images.SaveMultipart(req.Role, file)
		if err != nil {
			h.logger.Warn("failed to store signature image", zap.Error(err))
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to store signature image"))
			return
		}
		imagePath = stored
	}

	if err := h.config.SaveSignature(c.Request.Context(), claims.MatricNumber, req, imagePath); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Envelope{Message: "signature saved"})
}

// Delete godoc
// @Summary Remove a signatory
// @Tags Signatures
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/signatures/{role} [delete]
func (h *SignatureHandler) Delete(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	role := pathParam(c, "role")
	if err := h.config.DeleteSignature(c.Request.Context(), claims.MatricNumber, role); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Envelope{Message: "signature deleted"})
}
