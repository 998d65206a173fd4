package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/etudeproject/etude/internal/app/models"
	"github.com/etudeproject/etude/internal/app/models/dto"
	"github.com/etudeproject/etude/internal/pkg/apperrors"
	"github.com/etudeproject/etude/internal/pkg/auth"
)

// UserRepository defines the storage operations the auth service
// depends on
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// AuthService handles account signup and credential verification
type AuthService struct {
	userRepo   UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login authenticates by email and issues a bearer token. Unknown
// account and wrong password are indistinguishable to the caller;
// storage failures are not credential failures and propagate as-is.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("failed to look up account")
		return nil, err
	}

	if !auth.CheckPassword(user.HashedPassword, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.Email)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to sign access token")
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

// Signup registers a new account. The plaintext password is hashed
// here and never reaches the repository.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*models.User, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrUserAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, err
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		HashedPassword: hashed,
		IsActive:       true,
		IsAdmin:        false,
	}

	return s.userRepo.Create(ctx, user)
}
