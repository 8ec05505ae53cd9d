package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amnayelamri/ResinByDounia/internal/config"
	"github.com/amnayelamri/ResinByDounia/internal/logger"
	"github.com/amnayelamri/ResinByDounia/internal/store"
	"github.com/amnayelamri/ResinByDounia/internal/utils"
	"github.com/amnayelamri/ResinByDounia/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification, JWT token lifecycle, and the startup
// admin bootstrap using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// It validates that both email and password are non-empty, looks up the
// account, and compares the plaintext password against the stored bcrypt
// hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials for an unknown email or a password mismatch.
//     The log distinguishes the two branches; the returned error never does.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("email", email).Msg("no user was found")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, password) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim plus the user's role as a custom claim, and
// expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrInvalidToken so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrInvalidToken
	}

	return token, nil
}

// EnsureAdmin guarantees, idempotently, that the administrative account
// exists. An existing account is never touched; when absent, the password
// is bcrypt-hashed and a new account with [models.RoleAdmin] is inserted.
//
// Two process instances may race through the "absent" branch at startup.
// The unique index on email makes the losing INSERT fail with
// [store.ErrEmailAlreadyExists], which is treated as success: the account
// exists by the time the conflict is detected.
func (a *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	if err == nil {
		log.Debug().Str("email", email).Msg("admin account already exists")
		return nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("admin lookup failed: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("admin password hashing failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			// Lost the startup race against another instance.
			log.Debug().Str("email", email).Msg("admin account created concurrently")
			return nil
		}
		return fmt.Errorf("admin creation failed: %w", err)
	}

	log.Info().Int64("id", created.UserID).Str("email", created.Email).Msg("default admin account created")
	return nil
}
