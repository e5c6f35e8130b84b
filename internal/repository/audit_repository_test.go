package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/portal-api/internal/models"
)

func TestAuditRepositoryAppend(t *testing.T) {
	repo := NewAuditRepository(newMemStore())
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, models.AuditActionRegister, "csc/2025/6612", ""))
	require.NoError(t, repo.Append(ctx, models.AuditActionApproved, "admin", "csc/2025/6612 first_semester"))

	entries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, models.AuditActionRegister, entries[0].Action)
	assert.Equal(t, models.AuditActionApproved, entries[1].Action)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.False(t, entries[0].Timestamp.IsZero())
	assert.Equal(t, "admin", entries[1].Actor)
	assert.Equal(t, "csc/2025/6612 first_semester", entries[1].Detail)
}

func TestAuditRepositoryListEmpty(t *testing.T) {
	repo := NewAuditRepository(newMemStore())

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
