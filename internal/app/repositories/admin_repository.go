package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daudx/sfhms/internal/app/models"
)

// IAdminRepository defines the admin dashboard database operations
type IAdminRepository interface {
	GetStats(ctx context.Context) (*models.AdminStats, error)
	ListSystemLogs(ctx context.Context) ([]models.SystemLog, error)
}

// AdminRepository handles admin dashboard database operations
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetStats returns the role-table counts and the number of students
// still waiting for a coach or nurse assignment, in one round trip.
func (r *AdminRepository) GetStats(ctx context.Context) (*models.AdminStats, error) {
	stats := &models.AdminStats{}
	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM students)  AS student_count,
			(SELECT COUNT(*) FROM coaches)   AS coach_count,
			(SELECT COUNT(*) FROM nurses)    AS nurse_count,
			(SELECT COUNT(*) FROM users)     AS user_count,
			(SELECT COUNT(*) FROM students WHERE coach_id IS NULL OR nurse_id IS NULL) AS pending_assignments`).
		Scan(&stats.StudentCount, &stats.CoachCount, &stats.NurseCount,
			&stats.UserCount, &stats.PendingAssignments)

	if err != nil {
		return nil, fmt.Errorf("error querying admin stats: %w", err)
	}

	return stats, nil
}

// ListSystemLogs returns the audit log ordered newest first. Callers
// decide how to treat an undefined-table error; this method propagates it.
func (r *AdminRepository) ListSystemLogs(ctx context.Context) ([]models.SystemLog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT log_id, action, performed_by, log_time, details
		FROM system_logs
		ORDER BY log_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.SystemLog, 0)
	for rows.Next() {
		var entry models.SystemLog
		err := rows.Scan(&entry.LogID, &entry.Action, &entry.PerformedBy,
			&entry.LogTime, &entry.Details)
		if err != nil {
			return nil, fmt.Errorf("error scanning system log: %w", err)
		}
		logs = append(logs, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading system logs: %w", err)
	}

	return logs, nil
}
