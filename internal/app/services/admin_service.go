package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/daudx/sfhms/internal/app/models"
	"github.com/daudx/sfhms/internal/app/repositories"
	"github.com/daudx/sfhms/internal/pkg/dberrors"
)

// AdminService defines admin dashboard operations
type AdminService interface {
	GetStats(ctx context.Context) (*models.AdminStats, error)
	GetSystemLogs(ctx context.Context) ([]models.SystemLog, error)
}

type adminService struct {
	adminRepo repositories.IAdminRepository
	logger    zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(adminRepo repositories.IAdminRepository, logger zerolog.Logger) AdminService {
	return &adminService{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// GetStats returns the dashboard counters
func (s *adminService) GetStats(ctx context.Context) (*models.AdminStats, error) {
	stats, err := s.adminRepo.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load admin stats: %w", err)
	}
	return stats, nil
}

// GetSystemLogs returns the audit log. A missing system_logs table is
// not an error for this endpoint: deployments without auditing enabled
// simply see an empty list.
func (s *adminService) GetSystemLogs(ctx context.Context) ([]models.SystemLog, error) {
	logs, err := s.adminRepo.ListSystemLogs(ctx)
	if err != nil {
		if dberrors.IsUndefinedTable(err) {
			s.logger.Warn().Msg("system_logs table not found, returning empty log list")
			return []models.SystemLog{}, nil
		}
		return nil, fmt.Errorf("failed to load system logs: %w", err)
	}
	return logs, nil
}
