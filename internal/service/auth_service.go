package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/internal/repository"
	appErrors "github.com/campusware/portal-api/pkg/errors"
)

type authStudentStore interface {
	FindByMatric(ctx context.Context, matric string) (*models.Student, error)
	Create(ctx context.Context, student models.Student) error
}

type portalConfigStore interface {
	Get(ctx context.Context) (models.PortalConfig, error)
	Update(ctx context.Context, mutate func(*models.PortalConfig) error) error
}

// AuthConfig defines configuration for session credentials.
type AuthConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

// AuthService handles student signup, login for both account types, token
// validation and the admin bootstrap.
type AuthService struct {
	students  authStudentStore
	config    portalConfigStore
	audit     auditWriter
	validator *validator.Validate
	logger    *zap.Logger
	jwtCfg    AuthConfig
}

// NewAuthService constructs an AuthService.
func NewAuthService(students authStudentStore, config portalConfigStore, audit auditWriter, validate *validator.Validate, logger *zap.Logger, jwtCfg AuthConfig) *AuthService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{students: students, config: config, audit: audit, validator: validate, logger: logger, jwtCfg: jwtCfg}
}

// RegisterStudent creates a student account. photoPath is the stored photo
// file name, empty when no photo was uploaded.
func (s *AuthService) RegisterStudent(ctx context.Context, req models.RegisterStudentRequest, photoPath string) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	student := models.Student{
		FullName:     req.FullName,
		MatricNumber: req.MatricNumber,
		Department:   req.Department,
		Level:        req.Level,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Photo:        photoPath,
		RegisteredCourses: map[models.SemesterKey][]models.Course{
			models.FirstSemester:  {},
			models.SecondSemester: {},
		},
		RegistrationStatus: map[models.SemesterKey]models.RegistrationStatus{
			models.FirstSemester:  models.StatusNotStarted,
			models.SecondSemester: models.StatusNotStarted,
		},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.students.Create(ctx, student); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return appErrors.Clone(appErrors.ErrConflict, "matric number already registered")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store student")
	}

	s.record(ctx, models.AuditActionRegister, req.MatricNumber, "")
	return nil
}

// Login authenticates either an admin (checked first) or a student and
// issues a session credential.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "matric number and password required")
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load portal config")
	}

	if admin := cfg.FindAdmin(req.MatricNumber); admin != nil {
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) == nil {
			token, err := s.issueToken(admin.MatricNumber, admin.FullName, true)
			if err != nil {
				return nil, err
			}
			return &models.LoginResponse{
				Token: token,
				User: models.UserInfo{
					FullName:     admin.FullName,
					MatricNumber: admin.MatricNumber,
					IsAdmin:      true,
				},
			}, nil
		}
		// An admin account with a wrong password falls through to the
		// student lookup, matching the portal's historic behavior.
	}

	student, err := s.students.FindByMatric(ctx, req.MatricNumber)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(req.Password)) != nil {
		return nil, appErrors.Clone(appErrors.ErrInvalidCredentials, "")
	}

	token, err := s.issueToken(student.MatricNumber, student.FullName, false)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: token,
		User: models.UserInfo{
			FullName:     student.FullName,
			MatricNumber: student.MatricNumber,
			Department:   student.Department,
			Level:        student.Level,
			IsAdmin:      false,
		},
	}, nil
}

// CreateAdmin appends an admin account to portal config. The endpoint is
// deliberately unauthenticated (bootstrap behavior carried over from the
// original deployment); duplicates are rejected by matric number.
func (s *AuthService) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid admin payload")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	err = s.config.Update(ctx, func(cfg *models.PortalConfig) error {
		if cfg.FindAdmin(req.MatricNumber) != nil {
			return appErrors.Clone(appErrors.ErrConflict, "admin already exists")
		}
		cfg.Admins = append(cfg.Admins, models.Admin{
			FullName:     req.FullName,
			MatricNumber: req.MatricNumber,
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.record(ctx, models.AuditActionAdminCreated, req.MatricNumber, "")
	return nil
}

// ValidateToken parses and validates a session credential.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtCfg.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	return claims, nil
}

func (s *AuthService) issueToken(matric, fullName string, isAdmin bool) (string, error) {
	issuedAt := time.Now().UTC()
	claims := &models.JWTClaims{
		MatricNumber: matric,
		FullName:     fullName,
		IsAdmin:      isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwtCfg.Issuer,
			Subject:   matric,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.jwtCfg.Expiration)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign token")
	}
	return signed, nil
}

func (s *AuthService) record(ctx context.Context, action, actor, detail string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Append(ctx, action, actor, detail); err != nil {
		s.logger.Warn("failed to append audit entry", zap.String("action", action), zap.Error(err))
	}
}
