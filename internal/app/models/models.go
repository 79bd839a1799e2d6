package models

// Role defines the user role type
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleCoach   Role = "Coach"
	RoleNurse   Role = "Nurse"
	RoleStudent Role = "Student"
)

// RegisterableRoles are the roles that may be chosen at self-registration.
// Admin accounts are created by seeding only.
var RegisterableRoles = []Role{RoleStudent, RoleCoach, RoleNurse}

// IsRegisterable reports whether the role may be chosen at registration.
func (r Role) IsRegisterable() bool {
	for _, role := range RegisterableRoles {
		if r == role {
			return true
		}
	}
	return false
}

// AppointmentStatus values for the appointments table
const (
	AppointmentScheduled = "Scheduled"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
)
