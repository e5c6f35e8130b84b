package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/internal/repository"
	appErrors "github.com/campusware/portal-api/pkg/errors"
	"github.com/campusware/portal-api/pkg/export"
)

type studentLister interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByMatric(ctx context.Context, matric string) (*models.Student, error)
}

// StudentFilter narrows the admin roster listing.
type StudentFilter struct {
	Department string
	Level      string
}

// StudentService serves profile reads and the admin roster views.
type StudentService struct {
	students studentLister
	csv      *export.CSVExporter
	logger   *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(students studentLister, csv *export.CSVExporter, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{students: students, csv: csv, logger: logger}
}

// Profile returns the student's own record, credential stripped.
func (s *StudentService) Profile(ctx context.Context, matric string) (*models.StudentProfile, error) {
	student, err := s.students.FindByMatric(ctx, matric)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	profile := student.Profile()
	return &profile, nil
}

// List returns the filtered roster with credentials stripped.
func (s *StudentService) List(ctx context.Context, filter StudentFilter) ([]models.StudentProfile, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}

	profiles := make([]models.StudentProfile, 0, len(students))
	for i := range students {
		if filter.Department != "" && students[i].Department != filter.Department {
			continue
		}
		if filter.Level != "" && students[i].Level != filter.Level {
			continue
		}
		profiles = append(profiles, students[i].Profile())
	}
	return profiles, nil
}

// ExportCSV renders the filtered roster as a CSV download.
func (s *StudentService) ExportCSV(ctx context.Context, filter StudentFilter) ([]byte, error) {
	profiles, err := s.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	headers := []string{"Matric Number", "Full Name", "Department", "Level", "Email", "Phone", "First Semester", "Second Semester"}
	rows := make([]map[string]string, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		rows = append(rows, map[string]string{
			"Matric Number":   p.MatricNumber,
			"Full Name":       p.FullName,
			"Department":      p.Department,
			"Level":           p.Level,
			"Email":           p.Email,
			"Phone":           p.Phone,
			"First Semester":  statusOrDefault(p.RegistrationStatus, models.FirstSemester),
			"Second Semester": statusOrDefault(p.RegistrationStatus, models.SecondSemester),
		})
	}

	data, err := s.csv.Render(export.Dataset{Headers: headers, Rows: rows})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render roster csv")
	}
	return data, nil
}

func statusOrDefault(statuses map[models.SemesterKey]models.RegistrationStatus, semester models.SemesterKey) string {
	if status, ok := statuses[semester]; ok && status != "" {
		return string(status)
	}
	return string(models.StatusNotStarted)
}

// CourseForm builds the printable registration form for one semester.
func (s *StudentService) CourseForm(ctx context.Context, matric, rawSemester string, signatures map[string]models.Signature) (*export.CourseForm, error) {
	if !models.ValidSemesterKey(rawSemester) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid semester")
	}
	semester := models.SemesterKey(rawSemester)

	student, err := s.students.FindByMatric(ctx, matric)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	courses := student.CoursesFor(semester)
	formCourses := make([]export.CourseFormCourse, 0, len(courses))
	for _, c := range courses {
		formCourses = append(formCourses, export.CourseFormCourse{Code: c.Code, Title: c.Title, Units: c.Units})
	}

	formSignatures := make([]export.CourseFormSignature, 0, len(signatures))
	for role, sig := range signatures {
		formSignatures = append(formSignatures, export.CourseFormSignature{Role: role, Name: sig.Name})
	}

	return &export.CourseForm{
		Semester:   SemesterDisplay(semester),
		FullName:   student.FullName,
		Matric:     student.MatricNumber,
		Department: student.Department,
		Level:      student.Level,
		Status:     string(student.StatusFor(semester)),
		Courses:    formCourses,
		TotalUnits: models.TotalUnits(courses),
		Signatures: formSignatures,
	}, nil
}

// FilenameForForm names the course form PDF download.
func FilenameForForm(matric, rawSemester string) string {
	return fmt.Sprintf("course-form-%s-%s.pdf", sanitizeFilename(matric), rawSemester)
}

func sanitizeFilename(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		default:
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "student"
	}
	return string(out)
}
