package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-flix/internal/config"
	"github.com/MKhiriev/go-flix/internal/crypto"
	"github.com/MKhiriev/go-flix/internal/logger"
	"github.com/MKhiriev/go-flix/internal/store"
	"github.com/MKhiriev/go-flix/internal/utils"
	"github.com/MKhiriev/go-flix/internal/validators"
	"github.com/MKhiriev/go-flix/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher
// for password hashes.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher    crypto.PasswordHasher
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// Fields are trimmed and validated, the password is hashed and the record is
// handed to the UserRepository.
//
// Returns the public projection of the stored user or:
//   - an error wrapping validators.ErrValidation for missing or malformed
//     fields (a password over 72 bytes included);
//   - store.ErrUserAlreadyExists if the user name or e-mail is taken;
//   - a wrapped storage error otherwise.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.PublicUser, error) {
	log := logger.FromContext(ctx)

	req = validators.NormalizeRegisterRequest(req)
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("user_name", req.UserName).Msg("invalid register request")
		return models.PublicUser{}, err
	}

	hash, err := a.hasher.Hash(req.Password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return models.PublicUser{}, fmt.Errorf("%w: %w", validators.ErrValidation, err)
	}
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.PublicUser{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		UserName:     req.UserName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("user_name", req.UserName).Msg("user creation ended with error")
		return models.PublicUser{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	return user.Public(), nil
}

// Login authenticates an existing user and issues a token. The returned
// profile carries no phone number.
//
// An unknown user name and a wrong password both yield ErrInvalidCredentials.
// For an unknown user a dummy comparison is still run so that both paths cost
// one bcrypt comparison.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (string, models.PublicUser, error) {
	log := logger.FromContext(ctx)

	req = validators.NormalizeLoginRequest(req)
	if err := a.validator.Validate(ctx, req); err != nil {
		return "", models.PublicUser{}, err
	}

	user, err := a.userRepository.FindUserByUserName(ctx, req.UserName)
	if errors.Is(err, store.ErrNoUserWasFound) {
		a.hasher.DummyCompare(req.Password)
		log.Debug().Str("user_name", req.UserName).Msg("login for unknown user")
		return "", models.PublicUser{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("user_name", req.UserName).Msg("user search by user name failed")
		return "", models.PublicUser{}, fmt.Errorf("user search by user name failed: %w", err)
	}

	if err = a.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if errors.Is(err, crypto.ErrMismatchedPassword) || errors.Is(err, crypto.ErrPasswordTooLong) {
			log.Debug().Int64("user_id", user.UserID).Msg("wrong password")
			return "", models.PublicUser{}, ErrInvalidCredentials
		}
		log.Err(err).Int64("user_id", user.UserID).Msg("password comparison failed")
		return "", models.PublicUser{}, fmt.Errorf("password comparison failed: %w", err)
	}

	public := user.Public()
	token, err := a.CreateToken(ctx, public)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token creation failed")
		return "", models.PublicUser{}, err
	}

	return token.SignedString, public.LoginProfile(), nil
}

// Verify reports the identity carried by rawToken.
func (a *authService) Verify(ctx context.Context, rawToken string) (models.Claims, error) {
	if rawToken == "" {
		return models.Claims{}, ErrTokenIsExpiredOrInvalid
	}
	return a.ParseToken(ctx, rawToken)
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.PublicUser) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong signature, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Claims{}, ErrTokenIsExpiredOrInvalid
	}

	return claims, nil
}
