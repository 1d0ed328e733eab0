package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chatnest/api/internal/config"
	"github.com/chatnest/api/internal/logger"
	"github.com/chatnest/api/internal/store"
	"github.com/chatnest/api/internal/utils"
	"github.com/chatnest/api/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles account creation, credential verification, and session-token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor applied when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// SignUp creates a new user account.
//
// It validates that Name, Email, and Password are all non-empty, checks
// that no account with the same email exists, hashes the password with
// bcrypt, and delegates persistence to the UserRepository. The returned
// user carries server-assigned fields and no password digest.
//
// Returns:
//   - ErrInvalidDataProvided if any required field is empty.
//   - ErrAccountExists if the email is already registered. The check runs
//     twice: a friendly pre-check lookup, and the users.email UNIQUE
//     constraint surfacing as store.ErrEmailAlreadyExists when two signups
//     race past the pre-check.
//   - A wrapped internal error if hashing or persistence fails.
func (a *authService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Name == "" || user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByEmail(ctx, user.Email, false)
	if err == nil {
		return models.User{}, ErrAccountExists
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", user.Email).Msg("existing account lookup failed")
		return models.User{}, fmt.Errorf("existing account lookup failed: %w", err)
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = string(digest)
	user.Role = models.RoleUser

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrAccountExists
		}
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created.Sanitized(), nil
}

// Login authenticates an existing user.
//
// It validates that both email and password are non-empty, looks up the
// account including the stored digest, and compares the digest against the
// supplied password with bcrypt's constant-time comparison.
//
// Returns:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrNoUserWasFound (propagated) if no account matches the email.
//   - ErrWrongPassword if the digest does not match.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email, true)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Str("email", email).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser.Sanitized(), nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// Signature, issuer, and expiry are all checked. Failures are normalised
// into two sentinels so callers never inspect low-level jwt errors:
// ErrTokenIsExpired for expiry, ErrTokenIsInvalid for everything else.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// CurrentUser re-fetches the account behind a verified token, guarding
// against tokens that outlive account deletion.
//
// Returns ErrTokenUserGone when no account with the given id exists.
//
// Deliberately absent: a "password changed after token issuance" check.
func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrTokenUserGone
		}
		log.Err(err).Int64("id", userID).Msg("current user lookup failed")
		return models.User{}, fmt.Errorf("current user lookup failed: %w", err)
	}

	return user, nil
}

// ListUsers returns every account, passwords excluded.
func (a *authService) ListUsers(ctx context.Context) ([]models.User, error) {
	return a.userRepository.ListUsers(ctx)
}
