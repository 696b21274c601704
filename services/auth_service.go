package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"messageboard/models"
	"messageboard/repositories"
)

// AuthService registers users and issues and revokes session tokens.
type AuthService struct {
	users  repositories.UserRepository
	tokens repositories.AuthTokenRepository
	cost   int
}

// NewAuthService creates an AuthService hashing passwords with the given bcrypt cost.
func NewAuthService(users repositories.UserRepository, tokens repositories.AuthTokenRepository, cost int) *AuthService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &AuthService{users: users, tokens: tokens, cost: cost}
}

// Register creates the user and returns a fresh session token for it.
//
// The user and token inserts are separate statements. If the second one fails
// the account exists without a token and the user can simply log in.
func (s *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	logCtx := logrus.WithField("username", username)

	if username == "" || password == "" {
		return "", ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return "", fmt.Errorf("%w: hash password: %w", ErrPersistence, err)
	}

	user := &models.User{Username: username, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEntry) {
			logCtx.Warn("Registration failed: username already exists")
			return "", ErrDuplicateUsername
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return "", fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue token after registration")
		return "", err
	}

	logCtx.WithField("user_id", user.ID).Info("User registered successfully")
	return token, nil
}

// Login checks the credentials and returns a new session token. Earlier tokens
// of the same user stay valid.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	logCtx := logrus.WithField("username", username)

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logCtx.Warn("Login attempt failed: user not found")
			return "", ErrInvalidCredentials
		}
		logCtx.WithError(err).Error("Login attempt failed: error finding user")
		return "", fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logCtx.Warn("Login attempt failed: invalid password")
		return "", ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue token during login")
		return "", err
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in successfully")
	return token, nil
}

// Logout revokes token. An empty or unknown token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.tokens.Delete(ctx, token); err != nil {
		return fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return nil
}

func (s *AuthService) issueToken(ctx context.Context, userID uint) (string, error) {
	token := uuid.NewString()
	if err := s.tokens.Create(ctx, &models.AuthToken{Token: token, UserID: userID}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrPersistence, err)
	}
	return token, nil
}
