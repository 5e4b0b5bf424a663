package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/jstanier/taskboard-api/internal/domain"
	"github.com/jstanier/taskboard-api/internal/service/auth"
	"github.com/jstanier/taskboard-api/internal/store"
)

// dummyBcryptHash is a valid bcrypt hash of a random string. The sign-in
// path compares against it when the username does not exist so that both
// failure branches cost roughly the same and neither leaks which part failed.
const dummyBcryptHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService provides user registration and credential verification.
type AuthService interface {
	// Register creates a new user with the given username and plaintext
	// password. The password is hashed with a per-call random salt before it
	// is persisted. Returns ErrUsernameTaken if the username already exists.
	Register(ctx context.Context, username, password string) (*domain.User, error)

	// Authenticate verifies the credentials and, on success, returns a
	// signed access token. Returns ErrInvalidCredentials when the username
	// is unknown or the password does not match; the two cases are
	// indistinguishable to the caller.
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	userStore        store.UserStore
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
	jwtService       auth.JWTService
	db               *sql.DB
	logger           *slog.Logger
}

// NewAuthService creates a new AuthService with the given dependencies.
func NewAuthService(
	userStore store.UserStore,
	passwordHasher auth.PasswordHasher,
	passwordVerifier auth.PasswordVerifier,
	jwtService auth.JWTService,
	db *sql.DB,
	logger *slog.Logger,
) AuthService {
	return &AuthServiceImpl{
		userStore:        userStore,
		passwordHasher:   passwordHasher,
		passwordVerifier: passwordVerifier,
		jwtService:       jwtService,
		db:               db,
		logger:           logger.With("component", "auth_service"),
	}
}

// Register creates and persists a new user.
// The plaintext password never reaches the store; only the hash does.
func (s *AuthServiceImpl) Register(
	ctx context.Context,
	username, password string,
) (*domain.User, error) {
	user, err := domain.NewUser(username, password)
	if err != nil {
		s.logger.Debug("invalid user data during registration",
			"error", err,
			"username", username)
		return nil, NewServiceError("register", "invalid user data", err)
	}

	hashed, err := s.passwordHasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"username", username)
		return nil, NewServiceError("register", "failed to hash password", err)
	}
	user.HashedPassword = hashed
	user.Password = ""

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to register existing username",
				"username", username)
			return nil, ErrUsernameTaken
		}
		s.logger.Error("failed to save user",
			"error", err,
			"username", username)
		return nil, NewServiceError("register", "failed to save user", err)
	}

	s.logger.Info("user registered successfully",
		"user_id", user.ID,
		"username", user.Username)
	return user, nil
}

// Authenticate verifies the supplied credentials and issues an access token.
func (s *AuthServiceImpl) Authenticate(
	ctx context.Context,
	username, password string,
) (string, error) {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Burn a comparable amount of time before failing so the
			// unknown-username path is not observably faster.
			_ = s.passwordVerifier.Compare(dummyBcryptHash, password)
			s.logger.Debug("sign-in attempt for unknown username")
			return "", ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for sign-in",
			"error", err)
		return "", NewServiceError("authenticate", "failed to look up user", err)
	}

	if err := s.passwordVerifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("sign-in attempt with wrong password",
			"user_id", user.ID)
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user.Username)
	if err != nil {
		s.logger.Error("failed to generate access token",
			"error", err,
			"user_id", user.ID)
		return "", NewServiceError("authenticate", "failed to generate token", err)
	}

	s.logger.Info("user signed in successfully",
		"user_id", user.ID,
		"username", user.Username)
	return token, nil
}
