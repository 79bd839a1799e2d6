package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daudx/sfhms/internal/app/models"
)

// IMedicalRecordRepository defines medical record database operations
type IMedicalRecordRepository interface {
	List(ctx context.Context, studentID *int64) ([]models.MedicalRecord, error)
	ListByNurse(ctx context.Context, nurseID int64) ([]models.MedicalRecord, error)
	Create(ctx context.Context, record *models.MedicalRecord) (int64, error)
}

// MedicalRecordRepository handles medical record database operations
type MedicalRecordRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMedicalRecordRepository creates a new MedicalRecordRepository
func NewMedicalRecordRepository(db *pgxpool.Pool) *MedicalRecordRepository {
	return &MedicalRecordRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const medicalRecordColumns = "id, student_id, nurse_id, visit_date, diagnosis, prescription, notes, created_at"

// List retrieves medical records ordered by visit date descending,
// optionally filtered by student.
func (r *MedicalRecordRepository) List(ctx context.Context, studentID *int64) ([]models.MedicalRecord, error) {
	query := r.sb.Select(medicalRecordColumns).
		From("medical_records").
		OrderBy("visit_date DESC")

	if studentID != nil {
		query = query.Where(squirrel.Eq{"student_id": *studentID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build medical records query: %w", err)
	}

	return r.queryRecords(ctx, sql, args...)
}

// ListByNurse retrieves medical records created by one nurse,
// ordered by visit date descending.
func (r *MedicalRecordRepository) ListByNurse(ctx context.Context, nurseID int64) ([]models.MedicalRecord, error) {
	sql, args, err := r.sb.Select(medicalRecordColumns).
		From("medical_records").
		Where(squirrel.Eq{"nurse_id": nurseID}).
		OrderBy("visit_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build nurse records query: %w", err)
	}

	return r.queryRecords(ctx, sql, args...)
}

func (r *MedicalRecordRepository) queryRecords(ctx context.Context, sql string, args ...any) ([]models.MedicalRecord, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying medical records: %w", err)
	}
	defer rows.Close()

	records := make([]models.MedicalRecord, 0)
	for rows.Next() {
		var rec models.MedicalRecord
		err := rows.Scan(&rec.ID, &rec.StudentID, &rec.NurseID, &rec.VisitDate,
			&rec.Diagnosis, &rec.Prescription, &rec.Notes, &rec.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning medical record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading medical records: %w", err)
	}

	return records, nil
}

// Create inserts a new medical record and returns the generated id
func (r *MedicalRecordRepository) Create(ctx context.Context, record *models.MedicalRecord) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO medical_records (student_id, nurse_id, visit_date, diagnosis, prescription, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		record.StudentID, record.NurseID, record.VisitDate,
		record.Diagnosis, record.Prescription, record.Notes).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating medical record: %w", err)
	}

	record.ID = id
	return id, nil
}
