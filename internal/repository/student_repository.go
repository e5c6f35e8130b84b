package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/pkg/recordstore"
)

// StudentRepository owns the students collection.
type StudentRepository struct {
	store recordstore.Store
	mu    sync.Mutex
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(store recordstore.Store) *StudentRepository {
	return &StudentRepository{store: store}
}

// List returns every student record.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

// FindByMatric returns the student with the given matric number.
func (r *StudentRepository) FindByMatric(ctx context.Context, matric string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	students, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].MatricNumber == matric {
			student := students[i]
			return &student, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a new student, rejecting duplicate matric numbers.
func (r *StudentRepository) Create(ctx context.Context, student models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	students, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range students {
		if students[i].MatricNumber == student.MatricNumber {
			return ErrDuplicate
		}
	}
	students = append(students, student)
	return r.store.Write(ctx, collectionStudents, students)
}

// Update runs mutate against the named student inside one locked
// read-modify-write cycle. An error from mutate aborts the write.
func (r *StudentRepository) Update(ctx context.Context, matric string, mutate func(*models.Student) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	students, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range students {
		if students[i].MatricNumber != matric {
			continue
		}
		if err := mutate(&students[i]); err != nil {
			return err
		}
		return r.store.Write(ctx, collectionStudents, students)
	}
	return ErrNotFound
}

func (r *StudentRepository) load(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := r.store.Read(ctx, collectionStudents, &students); err != nil {
		if errors.Is(err, recordstore.ErrNoRecord) {
			return []models.Student{}, nil
		}
		return nil, err
	}
	return students, nil
}
