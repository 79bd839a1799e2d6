package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/daudx/sfhms/internal/app/models"
	"github.com/daudx/sfhms/internal/app/models/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// performRequest drives a gin engine through httptest.
func performRequest(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
}

func assertErrorEnvelope(t *testing.T, recorder *httptest.ResponseRecorder, wantStatus int, wantMessage string) {
	t.Helper()
	if recorder.Code != wantStatus {
		t.Fatalf("expected status %d, got %d (body %s)", wantStatus, recorder.Code, recorder.Body.String())
	}

	var resp dto.ErrorResponse
	decodeBody(t, recorder, &resp)
	if resp.Success {
		t.Fatal("expected success=false in error envelope")
	}
	if resp.Error != wantMessage {
		t.Fatalf("expected error %q, got %q", wantMessage, resp.Error)
	}
}

// fakeAppointmentRepo records calls and serves canned appointment data.
type fakeAppointmentRepo struct {
	appointments  []models.Appointment
	err           error
	createdID     int64
	created       *models.Appointment
	listStudentID *int64
	listNurseID   *int64
	calls         int
}

func (f *fakeAppointmentRepo) List(ctx context.Context, studentID *int64) ([]models.Appointment, error) {
	f.calls++
	f.listStudentID = studentID
	return f.appointments, f.err
}

func (f *fakeAppointmentRepo) ListByNurse(ctx context.Context, nurseID int64) ([]models.Appointment, error) {
	f.calls++
	f.listNurseID = &nurseID
	return f.appointments, f.err
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) (int64, error) {
	f.calls++
	f.created = appt
	return f.createdID, f.err
}

// fakeMedicalRecordRepo records calls and serves canned record data.
type fakeMedicalRecordRepo struct {
	records       []models.MedicalRecord
	err           error
	createdID     int64
	created       *models.MedicalRecord
	listStudentID *int64
	listNurseID   *int64
	calls         int
}

func (f *fakeMedicalRecordRepo) List(ctx context.Context, studentID *int64) ([]models.MedicalRecord, error) {
	f.calls++
	f.listStudentID = studentID
	return f.records, f.err
}

func (f *fakeMedicalRecordRepo) ListByNurse(ctx context.Context, nurseID int64) ([]models.MedicalRecord, error) {
	f.calls++
	f.listNurseID = &nurseID
	return f.records, f.err
}

func (f *fakeMedicalRecordRepo) Create(ctx context.Context, record *models.MedicalRecord) (int64, error) {
	f.calls++
	f.created = record
	return f.createdID, f.err
}

// fakeTrainingPlanRepo records calls and serves canned plan data.
type fakeTrainingPlanRepo struct {
	plans       []models.TrainingPlan
	err         error
	createdID   int64
	created     *models.TrainingPlan
	listCoachID *int64
	calls       int
}

func (f *fakeTrainingPlanRepo) List(ctx context.Context, coachID *int64) ([]models.TrainingPlan, error) {
	f.calls++
	f.listCoachID = coachID
	return f.plans, f.err
}

func (f *fakeTrainingPlanRepo) Create(ctx context.Context, plan *models.TrainingPlan) (int64, error) {
	f.calls++
	f.created = plan
	return f.createdID, f.err
}

// fakeViewRepo records the executed statement.
type fakeViewRepo struct {
	rows  []map[string]any
	err   error
	stmt  string
	calls int
}

func (f *fakeViewRepo) QueryView(ctx context.Context, stmt string) ([]map[string]any, error) {
	f.calls++
	f.stmt = stmt
	return f.rows, f.err
}

// fakeAuthService is a stubbed services.AuthService.
type fakeAuthService struct {
	registerID  int64
	registerErr error
	loginToken  string
	loginUser   *models.User
	loginErr    error
	registered  *dto.RegisterRequest
}

func (f *fakeAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	f.registered = req
	return f.registerID, f.registerErr
}

func (f *fakeAuthService) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	return f.loginToken, f.loginUser, f.loginErr
}

// fakeAdminService is a stubbed services.AdminService.
type fakeAdminService struct {
	stats    *models.AdminStats
	logs     []models.SystemLog
	statsErr error
	logsErr  error
}

func (f *fakeAdminService) GetStats(ctx context.Context) (*models.AdminStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeAdminService) GetSystemLogs(ctx context.Context) ([]models.SystemLog, error) {
	return f.logs, f.logsErr
}

func findCookie(t *testing.T, recorder *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}
