package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/portal-api/internal/models"
)

type mockAuditReader struct {
	entries []models.AuditEntry
}

func (m *mockAuditReader) List(ctx context.Context) ([]models.AuditEntry, error) {
	out := make([]models.AuditEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}

func TestAuditListNewestFirst(t *testing.T) {
	reader := &mockAuditReader{entries: []models.AuditEntry{
		{ID: "1", Action: models.AuditActionRegister},
		{ID: "2", Action: models.AuditActionRegisterCourses},
		{ID: "3", Action: models.AuditActionApproved},
	}}
	svc := NewAuditService(reader)

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "3", entries[0].ID)
	assert.Equal(t, "1", entries[2].ID)
}
