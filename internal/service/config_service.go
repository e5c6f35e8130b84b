package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/portal-api/internal/models"
	appErrors "github.com/campusware/portal-api/pkg/errors"
)

type signatureImageStore interface {
	Delete(name string) error
}

// UpdateConfigRequest is the admin partial-update payload. Absent fields
// are left untouched; max_units entries are merged, not replaced.
type UpdateConfigRequest struct {
	ActiveSemester       *models.Semester `json:"active_semester" validate:"omitempty,oneof=first second"`
	MaxUnits             map[string]int   `json:"max_units"`
	RegistrationDeadline *string          `json:"registration_deadline"`
}

// SaveSignatureRequest labels a signatory role; imagePath is the stored
// scan, empty when none was uploaded.
type SaveSignatureRequest struct {
	Role string `form:"role" validate:"required"`
	Name string `form:"name" validate:"required"`
}

// ConfigService reads and mutates the portal config singleton, including
// the course form signatories.
type ConfigService struct {
	config    portalConfigStore
	audit     auditWriter
	images    signatureImageStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewConfigService constructs a ConfigService.
func NewConfigService(config portalConfigStore, audit auditWriter, images signatureImageStore, validate *validator.Validate, logger *zap.Logger) *ConfigService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfigService{config: config, audit: audit, images: images, validator: validate, logger: logger}
}

// Public returns the student-visible subset of portal config.
func (s *ConfigService) Public(ctx context.Context) (*models.PublicConfig, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load portal config")
	}
	return &models.PublicConfig{
		ActiveSemester:       cfg.ActiveSemester,
		RegistrationDeadline: cfg.RegistrationDeadline,
		MaxUnits:             cfg.MaxUnits,
	}, nil
}

// Update applies a partial config update. The registration deadline is
// stored and returned but never enforced against submissions.
func (s *ConfigService) Update(ctx context.Context, actor string, req UpdateConfigRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid config payload")
	}

	err := s.config.Update(ctx, func(cfg *models.PortalConfig) error {
		if req.ActiveSemester != nil {
			cfg.ActiveSemester = *req.ActiveSemester
		}
		if req.MaxUnits != nil {
			if cfg.MaxUnits == nil {
				cfg.MaxUnits = map[string]int{}
			}
			for level, units := range req.MaxUnits {
				cfg.MaxUnits[level] = units
			}
		}
		if req.RegistrationDeadline != nil {
			cfg.RegistrationDeadline = *req.RegistrationDeadline
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.record(ctx, models.AuditActionConfigUpdate, actor, "")
	return nil
}

// Signatures returns the signature map, for both the admin and the public
// course form views.
func (s *ConfigService) Signatures(ctx context.Context) (map[string]models.Signature, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load portal config")
	}
	return cfg.Signatures, nil
}

// SaveSignature upserts a signatory. An empty imagePath keeps any existing
// scan off the record.
func (s *ConfigService) SaveSignature(ctx context.Context, actor string, req SaveSignatureRequest, imagePath string) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "role and name required")
	}

	err := s.config.Update(ctx, func(cfg *models.PortalConfig) error {
		if cfg.Signatures == nil {
			cfg.Signatures = map[string]models.Signature{}
		}
		cfg.Signatures[req.Role] = models.Signature{
			Name:      req.Name,
			Image:     imagePath,
			UpdatedAt: time.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.record(ctx, models.AuditActionSignatureUpdate, actor, req.Role)
	return nil
}

// DeleteSignature removes a signatory and its stored image.
func (s *ConfigService) DeleteSignature(ctx context.Context, actor, role string) error {
	var image string
	err := s.config.Update(ctx, func(cfg *models.PortalConfig) error {
		sig, ok := cfg.Signatures[role]
		if !ok {
			return appErrors.Clone(appErrors.ErrNotFound, "signature not found")
		}
		image = sig.Image
		delete(cfg.Signatures, role)
		return nil
	})
	if err != nil {
		return err
	}

	if image != "" && s.images != nil {
		if err := s.images.Delete(image); err != nil {
			s.logger.Warn("failed to delete signature image", zap.String("role", role), zap.Error(err))
		}
	}

	s.record(ctx, models.AuditActionSignatureDelete, actor, role)
	return nil
}

func (s *ConfigService) record(ctx context.Context, action, actor, detail string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Append(ctx, action, actor, detail); err != nil {
		s.logger.Warn("failed to append audit entry", zap.String("action", action), zap.Error(err))
	}
}
