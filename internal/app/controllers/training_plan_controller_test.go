package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daudx/sfhms/internal/app/models"
	"github.com/daudx/sfhms/internal/app/models/dto"
)

func newTrainingPlanRouter(repo *fakeTrainingPlanRepo) *gin.Engine {
	router := gin.New()
	controller := NewTrainingPlanController(repo, testLogger())
	router.GET("/api/training-plans", controller.List)
	router.POST("/api/training-plans", controller.Create)
	return router
}

func TestListTrainingPlans_CoachFilter(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeTrainingPlanRepo{
		plans: []models.TrainingPlan{
			{ID: 2, CoachID: 7, PlanName: "Endurance block", StartDate: start, EndDate: end},
		},
	}
	router := newTrainingPlanRouter(repo)

	recorder := performRequest(router, http.MethodGet, "/api/training-plans?coachId=7", "", nil)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (body %s)", recorder.Code, recorder.Body.String())
	}
	if repo.listCoachID == nil || *repo.listCoachID != 7 {
		t.Fatalf("expected coach filter 7, got %v", repo.listCoachID)
	}

	var resp dto.TrainingPlanListResponse
	decodeBody(t, recorder, &resp)
	if !resp.Success || len(resp.Plans) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Plans[0].StartDate != "2026-09-01" || resp.Plans[0].EndDate != "2026-12-01" {
		t.Fatalf("expected ISO dates, got %+v", resp.Plans[0])
	}
}

func TestCreateTrainingPlan_Success(t *testing.T) {
	repo := &fakeTrainingPlanRepo{createdID: 21}
	router := newTrainingPlanRouter(repo)

	body := `{"coachId":7,"planName":"Endurance block","description":"Base mileage","startDate":"2026-09-01","endDate":"2026-12-01"}`
	recorder := performRequest(router, http.MethodPost, "/api/training-plans", body, nil)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (body %s)", recorder.Code, recorder.Body.String())
	}

	var resp dto.TrainingPlanCreateResponse
	decodeBody(t, recorder, &resp)
	if !resp.Success || resp.PlanID != 21 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestCreateTrainingPlan_EndBeforeStart(t *testing.T) {
	repo := &fakeTrainingPlanRepo{}
	router := newTrainingPlanRouter(repo)

	body := `{"coachId":7,"planName":"Backwards","startDate":"2026-12-01","endDate":"2026-09-01"}`
	recorder := performRequest(router, http.MethodPost, "/api/training-plans", body, nil)
	assertErrorEnvelope(t, recorder, http.StatusBadRequest, "End date must not be before start date")

	if repo.calls != 0 {
		t.Fatalf("expected no repository calls, got %d", repo.calls)
	}
}

func TestCreateTrainingPlan_BadDates(t *testing.T) {
	repo := &fakeTrainingPlanRepo{}
	router := newTrainingPlanRouter(repo)

	bodies := []string{
		`{"coachId":7,"planName":"P","startDate":"next monday","endDate":"2026-12-01"}`,
		`{"coachId":7,"planName":"P","startDate":"2026-09-01","endDate":"01-12-2026"}`,
	}
	for _, body := range bodies {
		recorder := performRequest(router, http.MethodPost, "/api/training-plans", body, nil)
		assertErrorEnvelope(t, recorder, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	}
}
