package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/internal/repository"
	appErrors "github.com/campusware/portal-api/pkg/errors"
)

type registrationStudentStore interface {
	FindByMatric(ctx context.Context, matric string) (*models.Student, error)
	Update(ctx context.Context, matric string, mutate func(*models.Student) error) error
}

type portalConfigReader interface {
	Get(ctx context.Context) (models.PortalConfig, error)
}

type auditWriter interface {
	Append(ctx context.Context, action, actor, detail string) error
}

// SubmitRegistrationRequest is the student course submission payload.
type SubmitRegistrationRequest struct {
	Semester string          `json:"semester" validate:"required"`
	Courses  []models.Course `json:"courses"`
}

// SubmitRegistrationResult reports the accepted submission.
type SubmitRegistrationResult struct {
	Status     models.RegistrationStatus `json:"status"`
	TotalUnits int                       `json:"total_units"`
}

// RegisteredCoursesResult is a student's registration view for one semester.
type RegisteredCoursesResult struct {
	Courses []models.Course           `json:"courses"`
	Status  models.RegistrationStatus `json:"status"`
	Student models.StudentSummary     `json:"student"`
}

// RegistrationService enforces the per-student, per-semester registration
// workflow: the active-semester gate, the status lifecycle and the
// unit-load cap.
type RegistrationService struct {
	students  registrationStudentStore
	config    portalConfigReader
	audit     auditWriter
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRegistrationService constructs a RegistrationService.
func NewRegistrationService(students registrationStudentStore, config portalConfigReader, audit auditWriter, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *RegistrationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RegistrationService{students: students, config: config, audit: audit, cache: cache, metrics: metrics, validator: validate, logger: logger}
}

// Submit registers the given course list for the student's semester.
// Registration is accepted only for the currently active semester, only
// when the semester's status is not_started or rejected, and only when the
// total unit load fits the level's cap.
func (s *RegistrationService) Submit(ctx context.Context, matric string, req SubmitRegistrationRequest) (*SubmitRegistrationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}
	if !models.ValidSemesterKey(req.Semester) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid semester")
	}
	semester := models.SemesterKey(req.Semester)

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load portal config")
	}

	if activeKey := ActiveSemesterKey(cfg); semester != activeKey {
		msg := fmt.Sprintf("Registration closed for %s. Only %s is active.", SemesterDisplay(semester), SemesterDisplay(activeKey))
		return nil, appErrors.Clone(appErrors.ErrConflict, msg)
	}

	// An absent or empty course list is a valid submission of zero units.
	courses := req.Courses
	if courses == nil {
		courses = []models.Course{}
	}
	totalUnits := models.TotalUnits(courses)

	err = s.students.Update(ctx, matric, func(student *models.Student) error {
		if status := student.StatusFor(semester); status == models.StatusPending || status == models.StatusApproved {
			return appErrors.Clone(appErrors.ErrConflict, "courses already registered for this semester")
		}
		if limit := MaxUnitsFor(student.Level, cfg); totalUnits > limit {
			return appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("total units exceed the maximum of %d", limit))
		}
		if student.RegisteredCourses == nil {
			student.RegisteredCourses = map[models.SemesterKey][]models.Course{}
		}
		if student.RegistrationStatus == nil {
			student.RegistrationStatus = map[models.SemesterKey]models.RegistrationStatus{}
		}
		student.RegisteredCourses[semester] = courses
		student.RegistrationStatus[semester] = models.StatusPending
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, err
	}

	s.record(ctx, models.AuditActionRegisterCourses, matric, string(semester))
	s.invalidateDashboard(ctx)
	s.metrics.RecordRegistrationTransition(string(models.StatusPending))

	return &SubmitRegistrationResult{Status: models.StatusPending, TotalUnits: totalUnits}, nil
}

// Registered returns the student's courses and status for a semester.
func (s *RegistrationService) Registered(ctx context.Context, matric, rawSemester string) (*RegisteredCoursesResult, error) {
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
	if courses == nil {
		courses = []models.Course{}
	}
	return &RegisteredCoursesResult{
		Courses: courses,
		Status:  student.StatusFor(semester),
		Student: student.Summary(),
	}, nil
}

// Approve sets the semester's status to approved. There is no precondition
// on the prior status; re-approving is permitted and idempotent.
func (s *RegistrationService) Approve(ctx context.Context, actor, matric, rawSemester string) error {
	return s.setStatus(ctx, actor, matric, rawSemester, models.StatusApproved, models.AuditActionApproved)
}

// Reject sets the semester's status to rejected, unconditionally.
func (s *RegistrationService) Reject(ctx context.Context, actor, matric, rawSemester string) error {
	return s.setStatus(ctx, actor, matric, rawSemester, models.StatusRejected, models.AuditActionRejected)
}

// DeleteRegistration clears the semester's course list and resets the
// status to not_started, enabling a fresh submission cycle.
func (s *RegistrationService) DeleteRegistration(ctx context.Context, actor, matric, rawSemester string) error {
	if !models.ValidSemesterKey(rawSemester) {
		return appErrors.Clone(appErrors.ErrValidation, "invalid semester")
	}
	semester := models.SemesterKey(rawSemester)

	err := s.students.Update(ctx, matric, func(student *models.Student) error {
		if student.RegisteredCourses == nil {
			student.RegisteredCourses = map[models.SemesterKey][]models.Course{}
		}
		if student.RegistrationStatus == nil {
			student.RegistrationStatus = map[models.SemesterKey]models.RegistrationStatus{}
		}
		student.RegisteredCourses[semester] = []models.Course{}
		student.RegistrationStatus[semester] = models.StatusNotStarted
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return err
	}

	s.record(ctx, models.AuditActionDeleteReg, actor, fmt.Sprintf("%s %s", matric, semester))
	s.invalidateDashboard(ctx)
	s.metrics.RecordRegistrationTransition(string(models.StatusNotStarted))
	return nil
}

func (s *RegistrationService) setStatus(ctx context.Context, actor, matric, rawSemester string, status models.RegistrationStatus, action string) error {
	if !models.ValidSemesterKey(rawSemester) {
		return appErrors.Clone(appErrors.ErrValidation, "invalid semester")
	}
	semester := models.SemesterKey(rawSemester)

	err := s.students.Update(ctx, matric, func(student *models.Student) error {
		if student.RegistrationStatus == nil {
			student.RegistrationStatus = map[models.SemesterKey]models.RegistrationStatus{}
		}
		student.RegistrationStatus[semester] = status
		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return err
	}

	s.record(ctx, action, actor, fmt.Sprintf("%s %s", matric, semester))
	s.invalidateDashboard(ctx)
	s.metrics.RecordRegistrationTransition(string(status))
	return nil
}

func (s *RegistrationService) record(ctx context.Context, action, actor, detail string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Append(ctx, action, actor, detail); err != nil {
		s.logger.Warn("failed to append audit entry", zap.String("action", action), zap.Error(err))
	}
}

func (s *RegistrationService) invalidateDashboard(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, dashboardCacheKey); err != nil {
		s.logger.Warn("failed to invalidate dashboard cache", zap.Error(err))
	}
}
