package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/daudx/sfhms/internal/app/models"
	"github.com/daudx/sfhms/internal/db"
	"github.com/daudx/sfhms/internal/pkg/apperrors"
)

// IUserRepository defines the user-related database operations the
// auth service depends on.
type IUserRepository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	CreateWithProfile(ctx context.Context, user *models.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// EmailExists checks if an email is already registered
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`,
		email).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}

	return exists, nil
}

// UsernameExists checks if a username is already taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`,
		username).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking username: %w", err)
	}

	return exists, nil
}

// CreateWithProfile inserts the user row plus the role-specific profile
// row (student, coach or nurse) in one transaction and returns the
// generated user id. Students start with no coach or nurse assigned.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User) (int64, error) {
	var userID int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (name, username, email, password_hash, role)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			user.Name, user.Username, user.Email, user.PasswordHash, user.Role).Scan(&userID)
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}

		switch user.Role {
		case models.RoleStudent:
			_, err = tx.Exec(ctx, `
				INSERT INTO students (user_id, coach_id, nurse_id)
				VALUES ($1, NULL, NULL)`, userID)
		case models.RoleCoach:
			_, err = tx.Exec(ctx, `
				INSERT INTO coaches (user_id) VALUES ($1)`, userID)
		case models.RoleNurse:
			_, err = tx.Exec(ctx, `
				INSERT INTO nurses (user_id) VALUES ($1)`, userID)
		case models.RoleAdmin:
			// Admins have no profile table
		}
		if err != nil {
			return fmt.Errorf("error creating %s profile: %w", user.Role, err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	user.ID = userID
	return userID, nil
}

// GetByUsername retrieves a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, username, email, password_hash, role, created_at
		FROM users
		WHERE username = $1`,
		username).Scan(
		&user.ID, &user.Name, &user.Username, &user.Email,
		&user.PasswordHash, &user.Role, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, username, email, password_hash, role, created_at
		FROM users
		WHERE id = $1`,
		id).Scan(
		&user.ID, &user.Name, &user.Username, &user.Email,
		&user.PasswordHash, &user.Role, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return user, nil
}
