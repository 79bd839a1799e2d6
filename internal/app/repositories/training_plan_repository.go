package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daudx/sfhms/internal/app/models"
)

// ITrainingPlanRepository defines training plan database operations
type ITrainingPlanRepository interface {
	List(ctx context.Context, coachID *int64) ([]models.TrainingPlan, error)
	Create(ctx context.Context, plan *models.TrainingPlan) (int64, error)
}

// TrainingPlanRepository handles training plan database operations
type TrainingPlanRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTrainingPlanRepository creates a new TrainingPlanRepository
func NewTrainingPlanRepository(db *pgxpool.Pool) *TrainingPlanRepository {
	return &TrainingPlanRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// List retrieves training plans ordered by start date descending,
// optionally filtered by coach.
func (r *TrainingPlanRepository) List(ctx context.Context, coachID *int64) ([]models.TrainingPlan, error) {
	query := r.sb.Select("id", "coach_id", "plan_name", "description", "start_date", "end_date", "created_at").
		From("training_plans").
		OrderBy("start_date DESC")

	if coachID != nil {
		query = query.Where(squirrel.Eq{"coach_id": *coachID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build training plans query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying training plans: %w", err)
	}
	defer rows.Close()

	plans := make([]models.TrainingPlan, 0)
	for rows.Next() {
		var plan models.TrainingPlan
		err := rows.Scan(&plan.ID, &plan.CoachID, &plan.PlanName, &plan.Description,
			&plan.StartDate, &plan.EndDate, &plan.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning training plan: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading training plans: %w", err)
	}

	return plans, nil
}

// Create inserts a new training plan and returns the generated id
func (r *TrainingPlanRepository) Create(ctx context.Context, plan *models.TrainingPlan) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO training_plans (coach_id, plan_name, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		plan.CoachID, plan.PlanName, plan.Description, plan.StartDate, plan.EndDate).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("error creating training plan: %w", err)
	}

	plan.ID = id
	return id, nil
}
