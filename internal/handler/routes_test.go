package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campusware/portal-api/internal/middleware"
	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/internal/service"
)

type fakeCatalogStore struct {
	courses []models.Course
}

func (f *fakeCatalogStore) CoursesFor(ctx context.Context, department, level string, semester models.SemesterKey) ([]models.Course, error) {
	return f.courses, nil
}

// newPortalRouter mirrors the production route groups around the shared
// read endpoints: config and catalog require a valid bearer token of
// either role, the signature list is public, and the admin signature
// list sits behind the admin gate.
func newPortalRouter(students *fakeStudentStore, config *fakeConfigStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	authSvc := service.NewAuthService(students, config, &fakeAudit{}, nil, nil, service.AuthConfig{
		Secret:     "route-test-secret",
		Expiration: time.Hour,
		Issuer:     "portal-api",
	})
	configSvc := service.NewConfigService(config, &fakeAudit{}, nil, nil, nil)
	catalogSvc := service.NewCatalogService(&fakeCatalogStore{courses: []models.Course{{Code: "CSC301", Units: 3}}}, nil, 0, nil)

	configHandler := NewConfigHandler(configSvc)
	catalogHandler := NewCatalogHandler(catalogSvc)
	signatureHandler := NewSignatureHandler(configSvc, nil, nil)

	r := gin.New()
	r.UseRawPath = true
	r.UnescapePathValues = false

	api := r.Group("/api")
	api.GET("/public/signatures", signatureHandler.List)

	authed := api.Group("", middleware.JWT(authSvc))
	authed.GET("/config", configHandler.Public)
	authed.GET("/courses/:department/:level/:semester", catalogHandler.Courses)

	admin := api.Group("/admin", middleware.JWT(authSvc), middleware.RequireAdmin())
	admin.GET("/signatures", signatureHandler.List)

	return r
}

func signedHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func portalFixture(t *testing.T) (*gin.Engine, string, string) {
	t.Helper()

	cfg := models.DefaultPortalConfig()
	cfg.Admins = append(cfg.Admins, models.Admin{
		FullName:     "Dr. Bello",
		MatricNumber: "admin001",
		PasswordHash: signedHash(t, "admin-pass"),
	})
	cfg.Signatures["hod"] = models.Signature{Name: "Dr. Bello"}
	config := &fakeConfigStore{cfg: cfg}

	student := enrolledStudent()
	student.PasswordHash = signedHash(t, "sekret1")
	students := newFakeStudentStore(student)

	authSvc := service.NewAuthService(students, config, &fakeAudit{}, nil, nil, service.AuthConfig{
		Secret:     "route-test-secret",
		Expiration: time.Hour,
		Issuer:     "portal-api",
	})

	studentLogin, err := authSvc.Login(context.Background(), models.LoginRequest{
		MatricNumber: student.MatricNumber,
		Password:     "sekret1",
	})
	require.NoError(t, err)
	adminLogin, err := authSvc.Login(context.Background(), models.LoginRequest{
		MatricNumber: "admin001",
		Password:     "admin-pass",
	})
	require.NoError(t, err)

	return newPortalRouter(students, config), studentLogin.Token, adminLogin.Token
}

func TestConfigRouteRequiresToken(t *testing.T) {
	r, studentToken, adminToken := portalFixture(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	for _, token := range []string{studentToken, adminToken} {
		rec = httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/config", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "active_semester")
	}
}

func TestCatalogRouteRequiresToken(t *testing.T) {
	r, studentToken, _ := portalFixture(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses/csc/300/first_semester", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/courses/csc/300/first_semester", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CSC301")
}

func TestPublicSignaturesRoute(t *testing.T) {
	r, _, _ := portalFixture(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/public/signatures", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hod")
	assert.Contains(t, rec.Body.String(), "Dr. Bello")
}

func TestAdminSignaturesRoute(t *testing.T) {
	r, studentToken, adminToken := portalFixture(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/signatures", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/signatures", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/admin/signatures", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hod")
}
