package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/pkg/recordstore"
)

// AuditRepository owns the append-only audit trail.
type AuditRepository struct {
	store recordstore.Store
	mu    sync.Mutex
}

// NewAuditRepository constructs an AuditRepository.
func NewAuditRepository(store recordstore.Store) *AuditRepository {
	return &AuditRepository{store: store}
}

// Append records one audit entry, stamping id and timestamp.
func (r *AuditRepository) Append(ctx context.Context, action, actor, detail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, models.AuditEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Action:    action,
		Actor:     actor,
		Detail:    detail,
	})
	return r.store.Write(ctx, collectionLogs, entries)
}

// List returns the full audit trail, oldest first.
func (r *AuditRepository) List(ctx context.Context) ([]models.AuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *AuditRepository) load(ctx context.Context) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	if err := r.store.Read(ctx, collectionLogs, &entries); err != nil {
		if errors.Is(err, recordstore.ErrNoRecord) {
			return []models.AuditEntry{}, nil
		}
		return nil, err
	}
	return entries, nil
}
