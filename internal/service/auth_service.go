package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskhub/taskhub-api/internal/domain"
	"github.com/taskhub/taskhub-api/internal/service/auth"
	"github.com/taskhub/taskhub-api/internal/store"
)

// AuthResult is the outcome of a successful signup or login: the
// outward-facing user view and a fresh session token.
type AuthResult struct {
	User  domain.PublicUser
	Token string
}

// AuthService provides the signup, login, and current-user use cases.
type AuthService interface {
	// Signup registers a new user with the given email and password and
	// issues a session token.
	// Returns store.ErrEmailExists if the email is already registered;
	// no user row is written in that case.
	Signup(ctx context.Context, email, password string) (*AuthResult, error)

	// Login authenticates an existing user and issues a fresh session
	// token with a new expiry window.
	// Returns ErrInvalidCredentials whether the email is unknown or the
	// password is wrong; the two cases are observationally identical.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// CurrentUser looks up a user by ID.
	// Returns store.ErrUserNotFound if the user does not exist; callers
	// map this to "unauthenticated", not a system error.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.PublicUser, error)
}

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	userStore  store.UserStore
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	jwtService auth.JWTService
	logger     *slog.Logger
}

// Ensure AuthServiceImpl implements AuthService
var _ AuthService = (*AuthServiceImpl)(nil)

// NewAuthService creates a new AuthService.
func NewAuthService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AuthServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthServiceImpl{
		userStore:  userStore,
		hasher:     hasher,
		verifier:   verifier,
		jwtService: jwtService,
		logger:     logger.With("component", "auth_service"),
	}
}

// Signup registers a new user. The email's uniqueness is enforced by
// the store's unique constraint, so a conflicting signup performs no
// write and there is no check-then-insert window.
func (s *AuthServiceImpl) Signup(ctx context.Context, email, password string) (*AuthResult, error) {
	hashedPassword, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(email, hashedPassword)
	if err != nil {
		return nil, err
	}

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("signup rejected: email already registered")
			return nil, err
		}
		s.logger.Error("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user signed up", "user_id", user.ID)

	return &AuthResult{
		User:  user.Public(),
		Token: token,
	}, nil
}

// Login authenticates a user by email and password.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Same error as a wrong password so the response does not
			// reveal whether the email is registered.
			s.logger.Debug("login rejected: unknown email")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login rejected: password mismatch", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", user.ID)
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID)

	return &AuthResult{
		User:  user.Public(),
		Token: token,
	}, nil
}

// CurrentUser looks up a user by ID and returns the public projection.
func (s *AuthServiceImpl) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.PublicUser, error) {
	user, err := s.userStore.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("current user not found", "user_id", userID)
			return nil, err
		}
		s.logger.Error("failed to get user by ID", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}

	public := user.Public()
	return &public, nil
}
