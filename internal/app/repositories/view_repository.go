package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daudx/sfhms/internal/pkg/helpers"
)

// IViewRepository executes pre-built read-only view statements
type IViewRepository interface {
	QueryView(ctx context.Context, stmt string) ([]map[string]any, error)
}

// ViewRepository executes the pre-built statements produced by the
// views registry. It never receives raw client input; callers must
// resolve the view name through views.Resolve first.
type ViewRepository struct {
	db *pgxpool.Pool
}

// NewViewRepository creates a new ViewRepository
func NewViewRepository(db *pgxpool.Pool) *ViewRepository {
	return &ViewRepository{db: db}
}

// QueryView runs one pre-built statement and shapes the result as
// keyed rows, since view column sets are only known at runtime.
func (r *ViewRepository) QueryView(ctx context.Context, stmt string) ([]map[string]any, error) {
	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("error querying view: %w", err)
	}

	return helpers.CollectRowMaps(rows)
}
