package models

import "time"

// SystemLog is an append-only audit row based on the 'system_logs' table.
// The admin surface only reads it; absence of the table is tolerated.
// JSON keys follow the legacy reporting format consumed by the admin UI.
type SystemLog struct {
	LogID       int64     `json:"LOGID" db:"log_id"`
	Action      string    `json:"ACTION" db:"action"`
	PerformedBy string    `json:"PERFORMEDBY" db:"performed_by"`
	LogTime     time.Time `json:"LOGTIME" db:"log_time"`
	Details     string    `json:"DETAILS" db:"details"`
}

// AdminStats aggregates the role-table counts returned by the admin
// dashboard in a single round trip. JSON keys follow the legacy format.
type AdminStats struct {
	StudentCount       int64 `json:"STUDENTCOUNT" db:"student_count"`
	CoachCount         int64 `json:"COACHCOUNT" db:"coach_count"`
	NurseCount         int64 `json:"NURSECOUNT" db:"nurse_count"`
	UserCount          int64 `json:"USERCOUNT" db:"user_count"`
	PendingAssignments int64 `json:"PENDINGASSIGNMENTS" db:"pending_assignments"`
}
