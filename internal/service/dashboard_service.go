package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campusware/portal-api/internal/models"
	appErrors "github.com/campusware/portal-api/pkg/errors"
)

// DashboardStats is the admin overview payload.
type DashboardStats struct {
	TotalStudents    int            `json:"total_students"`
	PendingApprovals int            `json:"pending_approvals"`
	ByLevel          map[string]int `json:"by_level"`
	ByDepartment     map[string]int `json:"by_department"`
}

// DashboardService aggregates roster statistics, optionally cached.
type DashboardService struct {
	students studentLister
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(students studentLister, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{students: students, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// Stats computes the dashboard aggregates. A student counts as pending
// when either semester's registration awaits review.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	if s.cache != nil {
		var cached DashboardStats
		if hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}

	stats := &DashboardStats{
		TotalStudents: len(students),
		ByLevel:       map[string]int{},
		ByDepartment:  map[string]int{},
	}
	for i := range students {
		student := &students[i]
		if student.StatusFor(models.FirstSemester) == models.StatusPending ||
			student.StatusFor(models.SecondSemester) == models.StatusPending {
			stats.PendingApprovals++
		}
		level := student.Level
		if level == "" {
			level = "Unknown"
		}
		dept := student.Department
		if dept == "" {
			dept = "Unknown"
		}
		stats.ByLevel[level]++
		stats.ByDepartment[dept]++
	}

	if s.cache != nil {
		s.cache.Set(ctx, dashboardCacheKey, stats, s.cacheTTL)
	}
	return stats, nil
}
