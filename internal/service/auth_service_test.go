package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/internal/repository"
	appErrors "github.com/campusware/portal-api/pkg/errors"
)

type mockAuthStudentStore struct {
	students map[string]models.Student
}

func (m *mockAuthStudentStore) FindByMatric(ctx context.Context, matric string) (*models.Student, error) {
	if s, ok := m.students[matric]; ok {
		return &s, nil
	}
	return nil, repository.ErrNotFound
}

func (m *mockAuthStudentStore) Create(ctx context.Context, student models.Student) error {
	if m.students == nil {
		m.students = map[string]models.Student{}
	}
	if _, ok := m.students[student.MatricNumber]; ok {
		return repository.ErrDuplicate
	}
	m.students[student.MatricNumber] = student
	return nil
}

type mockConfigStore struct {
	cfg models.PortalConfig
}

func (m *mockConfigStore) Get(ctx context.Context) (models.PortalConfig, error) {
	return m.cfg, nil
}

func (m *mockConfigStore) Update(ctx context.Context, mutate func(*models.PortalConfig) error) error {
	return mutate(&m.cfg)
}

func testAuthConfig() AuthConfig {
	return AuthConfig{Secret: "test-secret", Expiration: time.Hour, Issuer: "portal-api"}
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func validSignup() models.RegisterStudentRequest {
	return models.RegisterStudentRequest{
		FullName:     "Ada Obi",
		MatricNumber: "csc/2025/6612",
		Department:   "Computer Science",
		Level:        "300",
		Password:     "sekret1",
		Email:        "ada@example.com",
	}
}

func TestAuthRegisterStudent(t *testing.T) {
	store := &mockAuthStudentStore{}
	audit := &mockAudit{}
	svc := NewAuthService(store, &mockConfigStore{}, audit, nil, nil, testAuthConfig())

	require.NoError(t, svc.RegisterStudent(context.Background(), validSignup(), "csc_2025_6612_photo.png"))

	saved, ok := store.students["csc/2025/6612"]
	require.True(t, ok)
	assert.NotEqual(t, "sekret1", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("sekret1")))
	assert.Equal(t, models.StatusNotStarted, saved.StatusFor(models.FirstSemester))
	assert.Equal(t, models.StatusNotStarted, saved.StatusFor(models.SecondSemester))
	assert.Equal(t, "csc_2025_6612_photo.png", saved.Photo)
	assert.Contains(t, audit.entries, models.AuditActionRegister)
}

func TestAuthRegisterStudentDuplicate(t *testing.T) {
	store := &mockAuthStudentStore{}
	svc := NewAuthService(store, &mockConfigStore{}, nil, nil, nil, testAuthConfig())

	require.NoError(t, svc.RegisterStudent(context.Background(), validSignup(), ""))

	err := svc.RegisterStudent(context.Background(), validSignup(), "")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Status, appErr.Status)
	assert.Equal(t, "matric number already registered", appErr.Message)
}

func TestAuthRegisterStudentValidation(t *testing.T) {
	svc := NewAuthService(&mockAuthStudentStore{}, &mockConfigStore{}, nil, nil, nil, testAuthConfig())

	req := validSignup()
	req.Password = ""
	err := svc.RegisterStudent(context.Background(), req, "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Status, appErrors.FromError(err).Status)
}

func TestAuthRegisterStudentAcceptsAnyPasswordLength(t *testing.T) {
	store := &mockAuthStudentStore{students: map[string]models.Student{}}
	svc := NewAuthService(store, &mockConfigStore{}, &mockAudit{}, nil, nil, testAuthConfig())

	req := validSignup()
	req.Password = "pin"
	err := svc.RegisterStudent(context.Background(), req, "")
	require.NoError(t, err)

	saved := store.students[req.MatricNumber]
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("pin")))
}

func TestAuthLoginStudent(t *testing.T) {
	store := &mockAuthStudentStore{students: map[string]models.Student{
		"csc/2025/6612": {
			FullName:     "Ada Obi",
			MatricNumber: "csc/2025/6612",
			Department:   "Computer Science",
			Level:        "300",
			PasswordHash: mustHash(t, "sekret1"),
		},
	}}
	svc := NewAuthService(store, &mockConfigStore{}, nil, nil, nil, testAuthConfig())

	resp, err := svc.Login(context.Background(), models.LoginRequest{MatricNumber: "csc/2025/6612", Password: "sekret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.User.IsAdmin)
	assert.Equal(t, "csc/2025/6612", resp.User.MatricNumber)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "csc/2025/6612", claims.MatricNumber)
	assert.False(t, claims.IsAdmin)
}

func TestAuthLoginAdmin(t *testing.T) {
	config := &mockConfigStore{cfg: models.PortalConfig{Admins: []models.Admin{{
		FullName:     "Portal Admin",
		MatricNumber: "admin",
		PasswordHash: mustHash(t, "hunter22"),
	}}}}
	svc := NewAuthService(&mockAuthStudentStore{}, config, nil, nil, nil, testAuthConfig())

	resp, err := svc.Login(context.Background(), models.LoginRequest{MatricNumber: "admin", Password: "hunter22"})
	require.NoError(t, err)
	assert.True(t, resp.User.IsAdmin)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	store := &mockAuthStudentStore{students: map[string]models.Student{
		"csc/2025/6612": {MatricNumber: "csc/2025/6612", PasswordHash: mustHash(t, "sekret1")},
	}}
	svc := NewAuthService(store, &mockConfigStore{}, nil, nil, nil, testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{MatricNumber: "csc/2025/6612", Password: "wrong"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Status, appErr.Status)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Message, appErr.Message)
}

func TestAuthLoginUnknownAccount(t *testing.T) {
	svc := NewAuthService(&mockAuthStudentStore{}, &mockConfigStore{}, nil, nil, nil, testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{MatricNumber: "nobody", Password: "sekret1"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Status, appErrors.FromError(err).Status)
}

func TestAuthCreateAdmin(t *testing.T) {
	config := &mockConfigStore{}
	audit := &mockAudit{}
	svc := NewAuthService(&mockAuthStudentStore{}, config, audit, nil, nil, testAuthConfig())

	req := models.CreateAdminRequest{FullName: "Portal Admin", MatricNumber: "admin", Password: "hunter22"}
	require.NoError(t, svc.CreateAdmin(context.Background(), req))
	require.NotNil(t, config.cfg.FindAdmin("admin"))
	assert.Contains(t, audit.entries, models.AuditActionAdminCreated)

	err := svc.CreateAdmin(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrConflict.Status, appErr.Status)
	assert.Equal(t, "admin already exists", appErr.Message)
}

func TestAuthValidateTokenRejectsTampering(t *testing.T) {
	svc := NewAuthService(&mockAuthStudentStore{}, &mockConfigStore{}, nil, nil, nil, testAuthConfig())
	other := NewAuthService(&mockAuthStudentStore{}, &mockConfigStore{}, nil, nil, nil, AuthConfig{Secret: "other-secret", Expiration: time.Hour})

	token, err := svc.issueToken("csc/2025/6612", "Ada Obi", false)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Status, appErrors.FromError(err).Status)

	_, err = svc.ValidateToken("not-a-token")
	require.Error(t, err)
}

func TestAuthValidateTokenExpired(t *testing.T) {
	expired := NewAuthService(&mockAuthStudentStore{}, &mockConfigStore{}, nil, nil, nil, AuthConfig{Secret: "test-secret", Expiration: -time.Minute})

	token, err := expired.issueToken("csc/2025/6612", "Ada Obi", false)
	require.NoError(t, err)

	_, err = expired.ValidateToken(token)
	require.Error(t, err)
}
