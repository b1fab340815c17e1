package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/juneandco/aisle/internal/database"
	"github.com/juneandco/aisle/internal/model"
	"github.com/juneandco/aisle/pkg/jwt"
)

// AuthService handles planner registration, login, and token validation.
type AuthService struct {
	users  UserStore
	tokens *jwt.Service
}

// AuthServiceConfig holds the dependencies for AuthService
type AuthServiceConfig struct {
	Users  UserStore
	Tokens *jwt.Service
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{users: cfg.Users, tokens: cfg.Tokens}
}

// Register creates a planner account. Admin accounts are never created here;
// they are provisioned out of band.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	if !model.IsValidGuestEmail(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < model.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if len(req.Password) > model.MaxPasswordLength {
		return nil, ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         model.UserRolePlanner,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues an access token. An unknown email
// and a wrong password report the same error.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(jwt.Claims{
		Subject: user.ID,
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Role:    user.Role,
	})
	if err != nil {
		return nil, err
	}

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokens.GetExpiration().Seconds()),
		User:        user,
	}, nil
}

// GetUser retrieves an account by id.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ValidateAccessToken checks a bearer token and returns its claims. Used by
// the auth middleware.
func (s *AuthService) ValidateAccessToken(token string) (*jwt.Claims, error) {
	return s.tokens.Validate(token)
}
