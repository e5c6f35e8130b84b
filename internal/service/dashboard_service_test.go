package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/portal-api/internal/models"
)

func TestDashboardStats(t *testing.T) {
	roster := &mockStudentLister{students: []models.Student{
		{
			MatricNumber: "csc/2025/6612",
			Department:   "Computer Science",
			Level:        "300",
			RegistrationStatus: map[models.SemesterKey]models.RegistrationStatus{
				models.FirstSemester: models.StatusPending,
			},
		},
		{
			MatricNumber: "csc/2025/6613",
			Department:   "Computer Science",
			Level:        "300",
			RegistrationStatus: map[models.SemesterKey]models.RegistrationStatus{
				models.FirstSemester:  models.StatusApproved,
				models.SecondSemester: models.StatusPending,
			},
		},
		{
			MatricNumber: "phy/2024/1200",
			Department:   "Physics",
			Level:        "400",
		},
		{
			MatricNumber: "x/0000/1",
		},
	}}
	svc := NewDashboardService(roster, nil, 0, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalStudents)
	assert.Equal(t, 2, stats.PendingApprovals)
	assert.Equal(t, 2, stats.ByLevel["300"])
	assert.Equal(t, 1, stats.ByLevel["400"])
	assert.Equal(t, 1, stats.ByLevel["Unknown"])
	assert.Equal(t, 2, stats.ByDepartment["Computer Science"])
	assert.Equal(t, 1, stats.ByDepartment["Unknown"])
}

func TestDashboardStatsEmptyRoster(t *testing.T) {
	svc := NewDashboardService(&mockStudentLister{}, nil, 0, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalStudents)
	assert.Equal(t, 0, stats.PendingApprovals)
	assert.Empty(t, stats.ByLevel)
}
