package dto

// CreateTrainingPlanRequest represents a new coaching plan.
// StartDate and EndDate cross the boundary as ISO YYYY-MM-DD strings.
type CreateTrainingPlanRequest struct {
	PlanName    string `json:"planName" binding:"required"`
	Description string `json:"description"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	CoachID     int64  `json:"coachId" binding:"required"`
}

// TrainingPlanData is the list-item shape for training plans
type TrainingPlanData struct {
	ID          int64  `json:"id"`
	CoachID     int64  `json:"coachId"`
	PlanName    string `json:"planName"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// TrainingPlanListResponse wraps a list of training plans
type TrainingPlanListResponse struct {
	Success bool               `json:"success"`
	Plans   []TrainingPlanData `json:"plans"`
}

// TrainingPlanCreateResponse returns the generated plan identifier
type TrainingPlanCreateResponse struct {
	Success bool  `json:"success"`
	PlanID  int64 `json:"planId"`
}
