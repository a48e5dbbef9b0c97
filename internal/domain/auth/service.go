package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"hardpos/internal/core/apperror"
	"hardpos/internal/core/entity"
	"hardpos/pkg/logger"
)

// LoginResult carries the issued token and the account it belongs to.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// Service provides login and account management.
type Service struct {
	repo Repository
	jwt  *JWTService
}

// NewService creates a new auth service.
func NewService(repo Repository, jwt *JWTService) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// Login verifies credentials and issues an access token.
// Wrong username and wrong password produce the same error, so the response
// does not leak which accounts exist.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewUnauthorized("invalid username or password")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user.Disabled {
		return nil, apperror.NewUnauthorized("account is disabled")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.NewUnauthorized("invalid username or password")
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ID.String(), user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	logger.Info(ctx, "user logged in", "user_id", user.ID, "username", user.Username)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// CreateUser registers a new account with a bcrypt-hashed password.
// Used by the seeder and by admin user management.
func (s *Service) CreateUser(ctx context.Context, username, displayName, password, role string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		Base:         entity.NewBase(),
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := user.Validate(ctx); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUsername(ctx, username)
	switch {
	case err == nil && existing != nil:
		return nil, apperror.NewDuplicate("user", "username", username)
	case err != nil && !apperror.IsNotFound(err):
		return nil, fmt.Errorf("check username uniqueness: %w", err)
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.Info(ctx, "user created", "user_id", user.ID, "username", username, "role", role)
	return user, nil
}
