package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daudx/sfhms/internal/app/models"
	"github.com/daudx/sfhms/internal/app/models/dto"
)

func newNurseRouter(apptRepo *fakeAppointmentRepo, recordRepo *fakeMedicalRecordRepo) *gin.Engine {
	router := gin.New()
	controller := NewNurseController(apptRepo, recordRepo, testLogger())
	router.GET("/api/nurse/appointments", controller.GetAppointments)
	router.GET("/api/nurse/records", controller.GetRecords)
	return router
}

func TestNurseEndpoints_MissingHeaderIsRejectedBeforeQuery(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{}
	recordRepo := &fakeMedicalRecordRepo{}
	router := newNurseRouter(apptRepo, recordRepo)

	for _, path := range []string{"/api/nurse/appointments", "/api/nurse/records"} {
		recorder := performRequest(router, http.MethodGet, path, "", nil)
		assertErrorEnvelope(t, recorder, http.StatusBadRequest, "Missing nurse ID")
	}

	if apptRepo.calls != 0 || recordRepo.calls != 0 {
		t.Fatalf("expected no repository calls, got %d appointment and %d record calls", apptRepo.calls, recordRepo.calls)
	}
}

func TestNurseEndpoints_MalformedHeaderIsRejected(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{}
	router := newNurseRouter(apptRepo, &fakeMedicalRecordRepo{})

	headers := map[string]string{"x-nurse-id": "not-a-number"}
	recorder := performRequest(router, http.MethodGet, "/api/nurse/appointments", "", headers)
	assertErrorEnvelope(t, recorder, http.StatusBadRequest, "Missing nurse ID")

	if apptRepo.calls != 0 {
		t.Fatalf("expected no repository calls, got %d", apptRepo.calls)
	}
}

func TestNurseAppointments_ScopedToHeaderNurse(t *testing.T) {
	apptDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	apptRepo := &fakeAppointmentRepo{
		appointments: []models.Appointment{
			{ID: 1, StudentID: 5, NurseID: 3, ApptDate: apptDate, ApptTime: "10:30", Status: models.AppointmentScheduled},
		},
	}
	router := newNurseRouter(apptRepo, &fakeMedicalRecordRepo{})

	headers := map[string]string{"x-nurse-id": "3"}
	recorder := performRequest(router, http.MethodGet, "/api/nurse/appointments", "", headers)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", recorder.Code, recorder.Body.String())
	}
	if apptRepo.listNurseID == nil || *apptRepo.listNurseID != 3 {
		t.Fatalf("expected nurse id 3 to reach the repository, got %v", apptRepo.listNurseID)
	}

	var resp dto.AppointmentListResponse
	decodeBody(t, recorder, &resp)
	if !resp.Success || len(resp.Appointments) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Appointments[0].ApptDate != "2026-09-01" {
		t.Fatalf("expected ISO date, got %q", resp.Appointments[0].ApptDate)
	}
}

func TestNurseRecords_ScopedToHeaderNurse(t *testing.T) {
	visitDate := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	recordRepo := &fakeMedicalRecordRepo{
		records: []models.MedicalRecord{
			{ID: 9, StudentID: 5, NurseID: 3, VisitDate: visitDate, Diagnosis: "Sprained ankle"},
		},
	}
	router := newNurseRouter(&fakeAppointmentRepo{}, recordRepo)

	headers := map[string]string{"x-nurse-id": "3"}
	recorder := performRequest(router, http.MethodGet, "/api/nurse/records", "", headers)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", recorder.Code, recorder.Body.String())
	}
	if recordRepo.listNurseID == nil || *recordRepo.listNurseID != 3 {
		t.Fatalf("expected nurse id 3 to reach the repository, got %v", recordRepo.listNurseID)
	}

	var resp dto.MedicalRecordListResponse
	decodeBody(t, recorder, &resp)
	if !resp.Success || len(resp.Records) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Records[0].Diagnosis != "Sprained ankle" {
		t.Fatalf("unexpected record: %+v", resp.Records[0])
	}
}
