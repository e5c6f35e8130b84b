package handler

import (
	"context"

	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/internal/repository"
)

// fakeStudentStore satisfies every student-facing store interface the
// services consume.
type fakeStudentStore struct {
	students map[string]*models.Student
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	store := &fakeStudentStore{students: map[string]*models.Student{}}
	for _, s := range students {
		store.students[s.MatricNumber] = s
	}
	return store
}

func (f *fakeStudentStore) List(ctx context.Context) ([]models.Student, error) {
	out := make([]models.Student, 0, len(f.students))
	for _, s := range f.students {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeStudentStore) FindByMatric(ctx context.Context, matric string) (*models.Student, error) {
	if s, ok := f.students[matric]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStudentStore) Create(ctx context.Context, student models.Student) error {
	if _, ok := f.students[student.MatricNumber]; ok {
		return repository.ErrDuplicate
	}
	f.students[student.MatricNumber] = &student
	return nil
}

func (f *fakeStudentStore) Update(ctx context.Context, matric string, mutate func(*models.Student) error) error {
	s, ok := f.students[matric]
	if !ok {
		return repository.ErrNotFound
	}
	return mutate(s)
}

type fakeConfigStore struct {
	cfg models.PortalConfig
}

func (f *fakeConfigStore) Get(ctx context.Context) (models.PortalConfig, error) {
	return f.cfg, nil
}

func (f *fakeConfigStore) Update(ctx context.Context, mutate func(*models.PortalConfig) error) error {
	return mutate(&f.cfg)
}

type fakeTokenStore struct {
	book models.TokenBook
}

func (f *fakeTokenStore) Update(ctx context.Context, mutate func(*models.TokenBook) error) error {
	return mutate(&f.book)
}

type fakeAudit struct {
	actions []string
}

func (f *fakeAudit) Append(ctx context.Context, action, actor, detail string) error {
	f.actions = append(f.actions, action)
	return nil
}

func (f *fakeAudit) List(ctx context.Context) ([]models.AuditEntry, error) {
	entries := make([]models.AuditEntry, 0, len(f.actions))
	for _, action := range f.actions {
		entries = append(entries, models.AuditEntry{Action: action})
	}
	return entries, nil
}
