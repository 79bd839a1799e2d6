package dto

// ErrorResponse is the uniform failure envelope for all endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewErrorResponse creates a failure envelope with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

// SuccessResponse is the minimal success envelope for endpoints
// with no payload (e.g. logout).
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
