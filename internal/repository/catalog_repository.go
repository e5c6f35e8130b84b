package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/pkg/recordstore"
)

// CatalogRepository reads per-department course catalogs. Catalog
// collections are named <department>_<first|second>_semester and are
// maintained out of band, so there is no write path.
type CatalogRepository struct {
	store recordstore.Store
}

// NewCatalogRepository constructs a CatalogRepository.
func NewCatalogRepository(store recordstore.Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// catalogDocument supports both catalog shapes found in deployments: a
// nested {"courses": {"100": [...]}} map or a flat course list.
type catalogDocument struct {
	Courses map[string][]models.Course `json:"courses"`
}

// CoursesFor returns the catalog entries for a department, level and
// semester. ErrNotFound is returned when the catalog collection is absent.
func (r *CatalogRepository) CoursesFor(ctx context.Context, department, level string, semester models.SemesterKey) ([]models.Course, error) {
	name := catalogCollection(department, semester)

	var raw json.RawMessage
	if err := r.store.Read(ctx, name, &raw); err != nil {
		if errors.Is(err, recordstore.ErrNoRecord) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var doc catalogDocument
	if err := json.Unmarshal(raw, &doc); err == nil && doc.Courses != nil {
		return doc.Courses[level], nil
	}

	var flat []models.Course
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", name, err)
	}
	return flat, nil
}

func catalogCollection(department string, semester models.SemesterKey) string {
	semesterName := "first"
	if semester == models.SecondSemester {
		semesterName = "second"
	}
	return fmt.Sprintf("%s_%s_semester", strings.ToLower(department), semesterName)
}
