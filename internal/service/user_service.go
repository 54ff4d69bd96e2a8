package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chopnow/internal/auth"
	"chopnow/internal/model"
	"chopnow/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// userService implements UserService.
type userService struct {
	userRepo repository.UserRepository
	tokens   *auth.Tokens
	logger   zerolog.Logger
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, tokens *auth.Tokens, logger zerolog.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger.With().Str("service", "user").Logger(),
	}
}

// Register creates a new account and signs the caller in. Registration is
// rejected when another account already uses the email address.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to check email")
		return nil, fmt.Errorf("failed to register: %w", err)
	}
	if existing != nil {
		s.logger.Debug().Str("email", email).Msg("email already registered")
		return nil, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	user := &model.User{
		UID:          uuid.NewString(),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		HomeAddress:  strings.TrimSpace(req.HomeAddress),
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to insert user")
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	token, err := s.tokens.Issue(user.UID)
	if err != nil {
		s.logger.Error().Err(err).Str("uid", user.UID).Msg("failed to issue token")
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	s.logger.Info().Str("uid", user.UID).Msg("user registered")

	return &model.AuthResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

// Login verifies credentials and issues a token. A missing account and a
// wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if req == nil || req.Email == "" || req.Password == "" {
		return nil, model.ErrInvalidCredentials
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to load user for login")
		return nil, fmt.Errorf("failed to log in: %w", err)
	}
	if user == nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Debug().Str("uid", user.UID).Msg("password mismatch")
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.UID)
	if err != nil {
		s.logger.Error().Err(err).Str("uid", user.UID).Msg("failed to issue token")
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	s.logger.Info().Str("uid", user.UID).Msg("user logged in")

	return &model.AuthResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

// GetProfile returns the user's profile.
func (s *userService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	if userID == "" {
		return nil, model.ErrNotAuthenticated
	}

	user, err := s.userRepo.GetByUID(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("uid", userID).Msg("failed to load profile")
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}

	public := user.Public()
	return &public, nil
}

// UpdateProfile merges the editable fields and returns the updated profile.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.User, error) {
	if userID == "" {
		return nil, model.ErrNotAuthenticated
	}
	if req == nil {
		return s.GetProfile(ctx, userID)
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, *req); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("uid", userID).Msg("failed to update profile")
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.Info().Str("uid", userID).Msg("profile updated")

	return s.GetProfile(ctx, userID)
}

// validateRegisterRequest checks the required sign-up fields.
func validateRegisterRequest(req *model.RegisterRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeMissingField, "Registration payload is required")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return model.NewDomainError(model.ErrCodeMissingField, "Full name is required")
	}
	if !strings.Contains(req.Email, "@") {
		return model.NewDomainError(model.ErrCodeMissingField, "A valid email is required")
	}
	if len(req.Password) < 6 {
		return model.NewDomainError(model.ErrCodeMissingField, "Password must be at least 6 characters")
	}
	return nil
}
