package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/internal/repository"
	appErrors "github.com/campusware/portal-api/pkg/errors"
)

type catalogReader interface {
	CoursesFor(ctx context.Context, department, level string, semester models.SemesterKey) ([]models.Course, error)
}

// CatalogService looks up department course catalogs, optionally cached.
type CatalogService struct {
	catalog  catalogReader
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(catalog catalogReader, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *CatalogService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{catalog: catalog, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// CoursesFor returns the course list for a department, level and semester.
func (s *CatalogService) CoursesFor(ctx context.Context, department, level, rawSemester string) ([]models.Course, error) {
	if !models.ValidSemesterKey(rawSemester) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid semester")
	}
	semester := models.SemesterKey(rawSemester)
	key := fmt.Sprintf("%s%s:%s:%s", catalogCachePfx, department, level, semester)

	if s.cache != nil {
		var cached []models.Course
		if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	courses, err := s.catalog.CoursesFor(ctx, department, level, semester)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "courses not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catalog")
	}
	if courses == nil {
		courses = []models.Course{}
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, courses, s.cacheTTL)
	}
	return courses, nil
}
