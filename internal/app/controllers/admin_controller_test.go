package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/daudx/sfhms/internal/app/models"
)

func newAdminRouter(svc *fakeAdminService) *gin.Engine {
	router := gin.New()
	controller := NewAdminController(svc, testLogger())
	router.GET("/api/admin/stats", controller.GetStats)
	router.GET("/api/admin/system-logs", controller.GetSystemLogs)
	return router
}

func TestGetAdminStats_LegacyKeyShape(t *testing.T) {
	svc := &fakeAdminService{
		stats: &models.AdminStats{
			StudentCount:       120,
			CoachCount:         8,
			NurseCount:         4,
			UserCount:          133,
			PendingAssignments: 17,
		},
	}
	router := newAdminRouter(svc)

	recorder := performRequest(router, http.MethodGet, "/api/admin/stats", "", nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", recorder.Code, recorder.Body.String())
	}

	var resp struct {
		Success bool                       `json:"success"`
		Stats   map[string]json.RawMessage `json:"stats"`
	}
	decodeBody(t, recorder, &resp)
	if !resp.Success {
		t.Fatal("expected success=true")
	}

	// The admin UI consumes the legacy uppercase key names.
	for _, key := range []string{"STUDENTCOUNT", "COACHCOUNT", "NURSECOUNT", "USERCOUNT", "PENDINGASSIGNMENTS"} {
		if _, ok := resp.Stats[key]; !ok {
			t.Errorf("missing stats key %q in %s", key, recorder.Body.String())
		}
	}
	if string(resp.Stats["STUDENTCOUNT"]) != "120" {
		t.Fatalf("expected STUDENTCOUNT 120, got %s", resp.Stats["STUDENTCOUNT"])
	}
}

func TestGetSystemLogs_EmptyListNotNull(t *testing.T) {
	svc := &fakeAdminService{logs: []models.SystemLog{}}
	router := newAdminRouter(svc)

	recorder := performRequest(router, http.MethodGet, "/api/admin/system-logs", "", nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var resp struct {
		Success bool              `json:"success"`
		Logs    []json.RawMessage `json:"logs"`
	}
	decodeBody(t, recorder, &resp)
	if !resp.Success {
		t.Fatal("expected success=true")
	}
	if resp.Logs == nil {
		t.Fatal("logs must be an empty list, not null")
	}
	if len(resp.Logs) != 0 {
		t.Fatalf("expected no logs, got %d", len(resp.Logs))
	}
}

func TestGetSystemLogs_LegacyKeyShape(t *testing.T) {
	svc := &fakeAdminService{
		logs: []models.SystemLog{
			{LogID: 1, Action: "LOGIN", PerformedBy: "admin", Details: "ok"},
		},
	}
	router := newAdminRouter(svc)

	recorder := performRequest(router, http.MethodGet, "/api/admin/system-logs", "", nil)

	var resp struct {
		Success bool                         `json:"success"`
		Logs    []map[string]json.RawMessage `json:"logs"`
	}
	decodeBody(t, recorder, &resp)
	if len(resp.Logs) != 1 {
		t.Fatalf("expected one log, got %d", len(resp.Logs))
	}
	for _, key := range []string{"LOGID", "ACTION", "PERFORMEDBY", "LOGTIME", "DETAILS"} {
		if _, ok := resp.Logs[0][key]; !ok {
			t.Errorf("missing log key %q in %s", key, recorder.Body.String())
		}
	}
}
