package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fintrack-be/internal/jwt"
	"fintrack-be/internal/models"
	"fintrack-be/internal/password"
	"fintrack-be/internal/repository"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password, so login failures don't reveal which part was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Profile(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *models.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, userID uuid.UUID, req *models.DeleteAccountRequest) error
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	hasher     *password.Hasher
	logger     *logrus.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService, hasher *password.Hasher, logger *logrus.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		hasher:     hasher,
		logger:     logger,
	}
}

// Register creates a new user account
func (s *authService) Register(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	hashed, err := s.hasher.Hash(ctx, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, req.Username, req.Email, hashed)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Generate JWT token for automatic login after registration
	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.RegisterResponse{
		Message: "User registered successfully",
		User: models.AuthResponse{
			UserID:    user.ID,
			Username:  user.Username,
			Email:     user.Email,
			CreatedAt: user.CreatedAt,
			Token:     token,
		},
	}, nil
}

// Login authenticates a user and returns user info with JWT token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := s.verifyPassword(ctx, req.Password, user.PasswordHash, user.ID); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		Token:     token,
	}, nil
}

// Profile returns the caller's own profile
func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*models.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// ChangePassword verifies the current password before storing a new hash
func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *models.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.verifyPassword(ctx, req.OldPassword, user.PasswordHash, user.ID); err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(ctx, req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, userID, hashed)
}

// DeleteAccount verifies the password, then deletes the user. Categories
// and transactions cascade at the database level.
func (s *authService) DeleteAccount(ctx context.Context, userID uuid.UUID, req *models.DeleteAccountRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.verifyPassword(ctx, req.Password, user.PasswordHash, user.ID); err != nil {
		return err
	}

	return s.userRepo.Delete(ctx, userID)
}

// verifyPassword maps a mismatch to ErrInvalidCredentials and logs a
// corrupt stored hash without exposing the cause to the caller.
func (s *authService) verifyPassword(ctx context.Context, plain, hash string, userID uuid.UUID) error {
	err := s.hasher.Verify(ctx, plain, hash)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, password.ErrMismatch):
		return ErrInvalidCredentials
	case errors.Is(err, password.ErrCorruptHash):
		s.logger.WithField("user_id", userID).Error("stored password hash is corrupt")
		return err
	default:
		return fmt.Errorf("failed to verify password: %w", err)
	}
}
