package services

import (
	"context"
	"errors"
	"log"

	"fleetease/internal/adapters/persistence/models"
	"fleetease/internal/adapters/persistence/repositories"
	"fleetease/internal/config"
	"fleetease/internal/core/domain"
	"fleetease/internal/pkg/jwt"
	"fleetease/internal/pkg/password"

	"gorm.io/gorm"
)

// AuthService handles staff authentication business logic
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the login response body the mobile app consumes
type AuthResponse struct {
	AccessToken string               `json:"access_token"`
	TokenType   string               `json:"token_type"`
	User        *models.UserResponse `json:"user"`
}

// Login authenticates a staff member
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	// 1. Find user by email
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	if !password.Verify(input.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	// 3. Generate access token
	token, err := jwt.GenerateAccessToken(
		user.ID,
		user.Email,
		user.Role,
		s.cfg.JWT.Secret,
		s.cfg.JWT.ExpiryHours,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ Staff logged in: %s", user.Email)

	return &AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.ToResponse(),
	}, nil
}

// ValidateAccessToken validates an access token
func (s *AuthService) ValidateAccessToken(accessToken string) (*jwt.Claims, error) {
	return jwt.ValidateAccessToken(accessToken, s.cfg.JWT.Secret)
}

// GetUserByID gets a staff user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
