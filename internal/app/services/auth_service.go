package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/daudx/sfhms/internal/app/models"
	"github.com/daudx/sfhms/internal/app/models/dto"
	"github.com/daudx/sfhms/internal/app/repositories"
	"github.com/daudx/sfhms/internal/pkg/apperrors"
	"github.com/daudx/sfhms/internal/pkg/auth"
	"github.com/daudx/sfhms/internal/pkg/dberrors"
	"github.com/daudx/sfhms/internal/pkg/validation"
)

// AuthService defines authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (int64, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
}

type authService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register validates and creates a new user account with its role
// profile. Each failure mode is a distinct error checked before the
// insert: missing fields, invalid role, duplicate email, duplicate
// username. The existence checks are not atomic with the insert; the
// unique constraints on users remain the backstop under concurrency.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	if req.Name == "" || req.Username == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return 0, apperrors.ErrMissingFields
	}

	role := models.Role(req.Role)
	if !role.IsRegisterable() {
		return 0, apperrors.ErrInvalidRole
	}

	nameOK := validation.NewStringValidation(req.Name).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate()
	if !nameOK {
		return 0, apperrors.NewValidationError("Name must be between 2 and 100 characters")
	}

	if !validation.IsValidEmail(req.Email) {
		return 0, apperrors.NewValidationError("Invalid email format")
	}

	passwordOK := validation.NewStringValidation(req.Password).
		WithMinLength(validation.PasswordMinLength).
		Validate()
	if !passwordOK {
		return 0, apperrors.NewValidationError("Password must be at least 6 characters")
	}

	emailExists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return 0, fmt.Errorf("failed to check email: %w", err)
	}
	if emailExists {
		return 0, apperrors.ErrEmailAlreadyExists
	}

	usernameExists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return 0, fmt.Errorf("failed to check username: %w", err)
	}
	if usernameExists {
		return 0, apperrors.ErrUsernameAlreadyExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	userID, err := s.userRepo.CreateWithProfile(ctx, user)
	if err != nil {
		// The existence checks above are not atomic with the insert; a
		// concurrent registration can still trip the unique constraints.
		switch {
		case dberrors.IsDuplicateConstraintError(err, "users_email_key"):
			return 0, apperrors.ErrEmailAlreadyExists
		case dberrors.IsDuplicateConstraintError(err, "users_username_key"):
			return 0, apperrors.ErrUsernameAlreadyExists
		case dberrors.IsUniqueViolation(err):
			return 0, apperrors.NewValidationError("Username or email already exists")
		}
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info().
		Int64("userID", userID).
		Str("username", req.Username).
		Str("role", req.Role).
		Msg("User registered")

	return userID, nil
}

// Login verifies credentials and issues a signed token
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Do not reveal whether the username exists
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info().
		Int64("userID", user.ID).
		Str("username", user.Username).
		Msg("User logged in")

	return token, user, nil
}
