package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/daudx/sfhms/internal/app/models"
)

// fakeAdminRepo is a stubbed IAdminRepository for service tests.
type fakeAdminRepo struct {
	stats    *models.AdminStats
	logs     []models.SystemLog
	statsErr error
	logsErr  error
}

func (f *fakeAdminRepo) GetStats(ctx context.Context) (*models.AdminStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeAdminRepo) ListSystemLogs(ctx context.Context) ([]models.SystemLog, error) {
	return f.logs, f.logsErr
}

func TestGetStats_Passthrough(t *testing.T) {
	repo := &fakeAdminRepo{
		stats: &models.AdminStats{
			StudentCount:       10,
			CoachCount:         3,
			NurseCount:         2,
			UserCount:          16,
			PendingAssignments: 4,
		},
	}
	svc := NewAdminService(repo, zerolog.Nop())

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.StudentCount != 10 || stats.PendingAssignments != 4 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestGetSystemLogs_UndefinedTableIsEmptyResult(t *testing.T) {
	repo := &fakeAdminRepo{
		logsErr: &pgconn.PgError{Code: "42P01", Message: `relation "system_logs" does not exist`},
	}
	svc := NewAdminService(repo, zerolog.Nop())

	logs, err := svc.GetSystemLogs(context.Background())
	if err != nil {
		t.Fatalf("expected missing table to be tolerated, got %v", err)
	}
	if logs == nil {
		t.Fatal("expected an empty list, got nil")
	}
	if len(logs) != 0 {
		t.Fatalf("expected no logs, got %d", len(logs))
	}
}

func TestGetSystemLogs_OtherErrorsPropagate(t *testing.T) {
	repoErr := errors.New("connection reset")
	repo := &fakeAdminRepo{logsErr: repoErr}
	svc := NewAdminService(repo, zerolog.Nop())

	if _, err := svc.GetSystemLogs(context.Background()); !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestGetSystemLogs_Passthrough(t *testing.T) {
	repo := &fakeAdminRepo{
		logs: []models.SystemLog{
			{LogID: 1, Action: "LOGIN", PerformedBy: "admin"},
		},
	}
	svc := NewAdminService(repo, zerolog.Nop())

	logs, err := svc.GetSystemLogs(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(logs) != 1 || logs[0].Action != "LOGIN" {
		t.Fatalf("unexpected logs: %+v", logs)
	}
}
