package models

import "time"

// Appointment links a student and a nurse based on the 'appointments' table
type Appointment struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	NurseID   int64     `json:"nurseId" db:"nurse_id"`
	ApptDate  time.Time `json:"-" db:"appt_date"`
	ApptTime  string    `json:"apptTime" db:"appt_time"`
	Status    string    `json:"status" db:"status"`
	Reason    string    `json:"reason,omitempty" db:"reason"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
