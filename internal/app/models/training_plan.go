package models

import "time"

// TrainingPlan defines one coaching plan based on the 'training_plans' table
type TrainingPlan struct {
	ID          int64     `json:"id" db:"id"`
	CoachID     int64     `json:"coachId" db:"coach_id"`
	PlanName    string    `json:"planName" db:"plan_name"`
	Description string    `json:"description,omitempty" db:"description"`
	StartDate   time.Time `json:"-" db:"start_date"`
	EndDate     time.Time `json:"-" db:"end_date"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
