package dto

// CreateAppointmentRequest represents a new appointment between a student
// and a nurse. ApptDate crosses the boundary as an ISO YYYY-MM-DD string.
type CreateAppointmentRequest struct {
	StudentID int64  `json:"studentId" binding:"required"`
	NurseID   int64  `json:"nurseId" binding:"required"`
	ApptDate  string `json:"apptDate" binding:"required"`
	ApptTime  string `json:"apptTime" binding:"required"`
	Reason    string `json:"reason"`
}

// AppointmentData is the list-item shape for appointments
type AppointmentData struct {
	ID        int64  `json:"id"`
	StudentID int64  `json:"studentId"`
	NurseID   int64  `json:"nurseId"`
	ApptDate  string `json:"apptDate"`
	ApptTime  string `json:"apptTime"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`
}

// AppointmentListResponse wraps a list of appointments
type AppointmentListResponse struct {
	Success      bool              `json:"success"`
	Appointments []AppointmentData `json:"appointments"`
}

// AppointmentCreateResponse returns the generated appointment identifier
type AppointmentCreateResponse struct {
	Success       bool  `json:"success"`
	AppointmentID int64 `json:"appointmentId"`
}
