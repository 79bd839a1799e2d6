package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/daudx/sfhms/internal/app/models"
	"github.com/daudx/sfhms/internal/app/repositories"
	"github.com/daudx/sfhms/internal/pkg/auth"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@sfhms.local"
)

// CreateDefaultAdmin ensures a default admin account exists so a fresh
// deployment can be administered. The password comes from the
// SFHMS_ADMIN_PASSWORD environment variable when set; the fallback is
// only meant for local development.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.UsernameExists(ctx, defaultAdminUsername)
	if err != nil {
		return fmt.Errorf("failed to check default admin: %w", err)
	}
	if exists {
		lgr.Debug().Msg("Default admin already present")
		return nil
	}

	password := adminPasswordFromEnv()
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := &models.User{
		Name:         "System Administrator",
		Username:     defaultAdminUsername,
		Email:        defaultAdminEmail,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
	}

	adminID, err := userRepo.CreateWithProfile(ctx, admin)
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}

	lgr.Info().Int64("userID", adminID).Str("username", defaultAdminUsername).Msg("Default admin account created")
	return nil
}
