package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusware/portal-api/internal/middleware"
	"github.com/campusware/portal-api/internal/models"
	"github.com/campusware/portal-api/internal/service"
	"github.com/campusware/portal-api/pkg/export"
	"github.com/campusware/portal-api/pkg/response"
)

func adminClaims() *models.JWTClaims {
	return &models.JWTClaims{MatricNumber: "admin", FullName: "Portal Admin", IsAdmin: true}
}

// newAdminRouter mirrors the production router's raw-path configuration so
// percent-encoded matric numbers stay single path segments.
func newAdminRouter(students *fakeStudentStore, config *fakeConfigStore, audit *fakeAudit) *gin.Engine {
	gin.SetMode(gin.TestMode)

	registration := service.NewRegistrationService(students, config, audit, nil, nil, nil, nil)
	studentSvc := service.NewStudentService(students, export.NewCSVExporter(), nil)
	dashboard := service.NewDashboardService(students, nil, 0, nil)
	tokens := service.NewTokenService(&fakeTokenStore{}, audit, nil, nil)
	configSvc := service.NewConfigService(config, audit, nil, nil, nil)
	auditSvc := service.NewAuditService(audit)
	h := NewAdminHandler(registration, studentSvc, dashboard, tokens, configSvc, auditSvc)

	r := gin.New()
	r.UseRawPath = true
	r.UnescapePathValues = false
	admin := r.Group("/admin", func(c *gin.Context) {
		c.Set(middleware.ContextUserKey, adminClaims())
	})
	admin.GET("/dashboard", h.Dashboard)
	admin.GET("/students", h.Students)
	admin.GET("/students/export", h.ExportStudents)
	admin.POST("/approve/:matric/:semester", h.Approve)
	admin.POST("/reject/:matric/:semester", h.Reject)
	admin.DELETE("/delete-registration/:matric/:semester", h.DeleteRegistration)
	admin.PUT("/config", h.UpdateConfig)
	admin.POST("/generate-token", h.GenerateToken)
	admin.GET("/logs", h.Logs)
	return r
}

func pendingStudent() *models.Student {
	return &models.Student{
		FullName:     "Ada Obi",
		MatricNumber: "csc/2025/6612",
		Department:   "Computer Science",
		Level:        "300",
		RegisteredCourses: map[models.SemesterKey][]models.Course{
			models.FirstSemester: {{Code: "CSC301", Units: 3}},
		},
		RegistrationStatus: map[models.SemesterKey]models.RegistrationStatus{
			models.FirstSemester: models.StatusPending,
		},
	}
}

func TestAdminApproveEncodedMatric(t *testing.T) {
	students := newFakeStudentStore(pendingStudent())
	r := newAdminRouter(students, &fakeConfigStore{cfg: models.DefaultPortalConfig()}, &fakeAudit{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/approve/csc%2F2025%2F6612/first_semester", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.StatusApproved, students.students["csc/2025/6612"].StatusFor(models.FirstSemester))
}

func TestAdminRejectUnknownStudent(t *testing.T) {
	r := newAdminRouter(newFakeStudentStore(), &fakeConfigStore{cfg: models.DefaultPortalConfig()}, &fakeAudit{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/reject/csc%2F2025%2F9999/first_semester", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminDeleteRegistration(t *testing.T) {
	students := newFakeStudentStore(pendingStudent())
	r := newAdminRouter(students, &fakeConfigStore{cfg: models.DefaultPortalConfig()}, &fakeAudit{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/delete-registration/csc%2F2025%2F6612/first_semester", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	saved := students.students["csc/2025/6612"]
	assert.Equal(t, models.StatusNotStarted, saved.StatusFor(models.FirstSemester))
	assert.Empty(t, saved.CoursesFor(models.FirstSemester))
}

func TestAdminDashboard(t *testing.T) {
	students := newFakeStudentStore(pendingStudent())
	r := newAdminRouter(students, &fakeConfigStore{cfg: models.DefaultPortalConfig()}, &fakeAudit{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data service.DashboardStats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.TotalStudents)
	assert.Equal(t, 1, envelope.Data.PendingApprovals)
}

func TestAdminStudentsFilter(t *testing.T) {
	other := pendingStudent()
	other.MatricNumber = "phy/2024/1200"
	other.Department = "Physics"
	students := newFakeStudentStore(pendingStudent(), other)
	r := newAdminRouter(students, &fakeConfigStore{cfg: models.DefaultPortalConfig()}, &fakeAudit{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/students?department=Physics", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data []models.StudentProfile `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "phy/2024/1200", envelope.Data[0].MatricNumber)
}

func TestAdminExportStudentsCSV(t *testing.T) {
	students := newFakeStudentStore(pendingStudent())
	r := newAdminRouter(students, &fakeConfigStore{cfg: models.DefaultPortalConfig()}, &fakeAudit{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/students/export", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "students.csv")
	assert.Contains(t, rec.Body.String(), "csc/2025/6612")
}

func TestAdminUpdateConfig(t *testing.T) {
	config := &fakeConfigStore{cfg: models.DefaultPortalConfig()}
	r := newAdminRouter(newFakeStudentStore(), config, &fakeAudit{})

	body := `{"active_semester": "second", "max_units": {"300": 21}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/config", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.SemesterSecond, config.cfg.ActiveSemester)
	assert.Equal(t, 21, config.cfg.MaxUnits["300"])
}

func TestAdminGenerateToken(t *testing.T) {
	audit := &fakeAudit{}
	r := newAdminRouter(newFakeStudentStore(), &fakeConfigStore{cfg: models.DefaultPortalConfig()}, audit)

	body := `{"type": "late_registration", "matric_number": "csc/2025/6612"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/generate-token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var envelope struct {
		Data service.IssueTokenResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data.Token)
	assert.Contains(t, audit.actions, models.AuditActionTokenGenerated)
}

func TestAdminGenerateTokenInvalidKind(t *testing.T) {
	r := newAdminRouter(newFakeStudentStore(), &fakeConfigStore{cfg: models.DefaultPortalConfig()}, &fakeAudit{})

	body := `{"type": "makeup", "matric_number": "csc/2025/6612"}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/generate-token", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminLogsNewestFirst(t *testing.T) {
	audit := &fakeAudit{actions: []string{models.AuditActionRegister, models.AuditActionApproved}}
	r := newAdminRouter(newFakeStudentStore(), &fakeConfigStore{cfg: models.DefaultPortalConfig()}, audit)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/logs", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	entries, ok := envelope.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, entries, 2)
	first, ok := entries[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, models.AuditActionApproved, first["action"])
}
