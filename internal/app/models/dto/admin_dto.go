package dto

import "github.com/daudx/sfhms/internal/app/models"

// AdminStatsResponse wraps the admin dashboard counters
type AdminStatsResponse struct {
	Success bool              `json:"success"`
	Stats   models.AdminStats `json:"stats"`
}

// SystemLogsResponse wraps the audit log listing. Logs is always a
// list, empty when the underlying table does not exist.
type SystemLogsResponse struct {
	Success bool               `json:"success"`
	Logs    []models.SystemLog `json:"logs"`
}
