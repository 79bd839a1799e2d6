package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // excluded from JSON
	Role         Role      `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Student defines the student profile based on the 'students' table.
// CoachID and NurseID are nullable; NULL means the assignment is pending.
type Student struct {
	ID      int64  `json:"id" db:"id"`
	UserID  int64  `json:"userId" db:"user_id"`
	CoachID *int64 `json:"coachId,omitempty" db:"coach_id"`
	NurseID *int64 `json:"nurseId,omitempty" db:"nurse_id"`
	User    *User  `json:"user,omitempty"` // Relation, no db tag
}

// Coach defines the coach profile based on the 'coaches' table
type Coach struct {
	ID             int64  `json:"id" db:"id"`
	UserID         int64  `json:"userId" db:"user_id"`
	Specialization string `json:"specialization,omitempty" db:"specialization"`
	User           *User  `json:"user,omitempty"` // Relation, no db tag
}

// Nurse defines the nurse profile based on the 'nurses' table
type Nurse struct {
	ID             int64  `json:"id" db:"id"`
	UserID         int64  `json:"userId" db:"user_id"`
	Specialization string `json:"specialization,omitempty" db:"specialization"`
	User           *User  `json:"user,omitempty"` // Relation, no db tag
}
