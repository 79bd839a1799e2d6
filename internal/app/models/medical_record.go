package models

import "time"

// MedicalRecord defines one clinical visit based on the 'medical_records'
// table. Records are insert-only; this surface never updates them.
type MedicalRecord struct {
	ID           int64     `json:"id" db:"id"`
	StudentID    int64     `json:"studentId" db:"student_id"`
	NurseID      int64     `json:"nurseId" db:"nurse_id"`
	VisitDate    time.Time `json:"-" db:"visit_date"`
	Diagnosis    string    `json:"diagnosis" db:"diagnosis"`
	Prescription string    `json:"prescription,omitempty" db:"prescription"`
	Notes        string    `json:"notes,omitempty" db:"notes"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
