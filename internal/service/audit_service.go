package service

import (
	"context"

	"github.com/campusware/portal-api/internal/models"
	appErrors "github.com/campusware/portal-api/pkg/errors"
)

type auditReader interface {
	List(ctx context.Context) ([]models.AuditEntry, error)
}

// AuditService exposes the append-only audit trail to admins.
type AuditService struct {
	audit auditReader
}

// NewAuditService constructs an AuditService.
func NewAuditService(audit auditReader) *AuditService {
	return &AuditService{audit: audit}
}

// List returns the full trail, newest first.
func (s *AuditService) List(ctx context.Context) ([]models.AuditEntry, error) {
	entries, err := s.audit.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load audit log")
	}
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}
