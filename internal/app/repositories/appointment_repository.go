package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daudx/sfhms/internal/app/models"
)

// IAppointmentRepository defines appointment database operations
type IAppointmentRepository interface {
	List(ctx context.Context, studentID *int64) ([]models.Appointment, error)
	ListByNurse(ctx context.Context, nurseID int64) ([]models.Appointment, error)
	Create(ctx context.Context, appt *models.Appointment) (int64, error)
}

// AppointmentRepository handles appointment database operations
type AppointmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAppointmentRepository creates a new AppointmentRepository
func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const appointmentColumns = "id, student_id, nurse_id, appt_date, appt_time, status, reason, created_at"

// List retrieves appointments ordered by appointment date descending,
// optionally filtered by student.
func (r *AppointmentRepository) List(ctx context.Context, studentID *int64) ([]models.Appointment, error) {
	query := r.sb.Select(appointmentColumns).
		From("appointments").
		OrderBy("appt_date DESC", "appt_time DESC")

	if studentID != nil {
		query = query.Where(squirrel.Eq{"student_id": *studentID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build appointments query: %w", err)
	}

	return r.queryAppointments(ctx, sql, args...)
}

// ListByNurse retrieves appointments assigned to one nurse,
// ordered by appointment date descending.
func (r *AppointmentRepository) ListByNurse(ctx context.Context, nurseID int64) ([]models.Appointment, error) {
	sql, args, err := r.sb.Select(appointmentColumns).
		From("appointments").
		Where(squirrel.Eq{"nurse_id": nurseID}).
		OrderBy("appt_date DESC", "appt_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build nurse appointments query: %w", err)
	}

	return r.queryAppointments(ctx, sql, args...)
}

func (r *AppointmentRepository) queryAppointments(ctx context.Context, sql string, args ...any) ([]models.Appointment, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying appointments: %w", err)
	}
	defer rows.Close()

	appointments := make([]models.Appointment, 0)
	for rows.Next() {
		var appt models.Appointment
		err := rows.Scan(&appt.ID, &appt.StudentID, &appt.NurseID, &appt.ApptDate,
			&appt.ApptTime, &appt.Status, &appt.Reason, &appt.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning appointment: %w", err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading appointments: %w", err)
	}

	return appointments, nil
}

// Create inserts a new appointment and returns the generated id.
// New appointments always start in the Scheduled status.
func (r *AppointmentRepository) Create(ctx context.Context, appt *models.Appointment) (int64, error) {
	if appt.Status == "" {
		appt.Status = models.AppointmentScheduled
	}

	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO appointments (student_id, nurse_id, appt_date, appt_time, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		appt.StudentID, appt.NurseID, appt.ApptDate, appt.ApptTime,
		appt.Status, appt.Reason).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating appointment: %w", err)
	}

	appt.ID = id
	return id, nil
}
