package dto

// CreateMedicalRecordRequest represents a new clinical visit row.
// VisitDate crosses the boundary as an ISO YYYY-MM-DD string.
type CreateMedicalRecordRequest struct {
	StudentID    int64  `json:"studentId" binding:"required"`
	NurseID      int64  `json:"nurseId" binding:"required"`
	VisitDate    string `json:"visitDate" binding:"required"`
	Diagnosis    string `json:"diagnosis" binding:"required"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
}

// MedicalRecordData is the list-item shape for medical records
type MedicalRecordData struct {
	ID           int64  `json:"id"`
	StudentID    int64  `json:"studentId"`
	NurseID      int64  `json:"nurseId"`
	VisitDate    string `json:"visitDate"`
	Diagnosis    string `json:"diagnosis"`
	Prescription string `json:"prescription,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// MedicalRecordListResponse wraps a list of medical records
type MedicalRecordListResponse struct {
	Success bool                `json:"success"`
	Records []MedicalRecordData `json:"records"`
}

// MedicalRecordCreateResponse returns the generated record identifier
type MedicalRecordCreateResponse struct {
	Success  bool  `json:"success"`
	RecordID int64 `json:"recordId"`
}
