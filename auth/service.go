package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MehradEsmaeilZad81/TodoList/apperror"
	"github.com/MehradEsmaeilZad81/TodoList/logging"
	"github.com/MehradEsmaeilZad81/TodoList/validation"
)

// dummyPassword is hashed when the Service is built and compared against when a
// login names an unknown email, so both failure paths spend the same bcrypt time.
const dummyPassword = "todolist-timing-equalizer"

// Service provides registration, login and token verification.
type Service struct {
	users     UserRepository
	hasher    PasswordHasher
	tokens    *TokenManager
	validator *validation.Validator
	log       logging.Logger
	dummyHash string
}

// NewService creates a new Service. Dependencies are injected explicitly.
func NewService(users UserRepository, hasher PasswordHasher, tokens *TokenManager, log logging.Logger) *Service {
	return &Service{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		validator: validation.Default(),
		log:       log.With("component", "auth"),
		dummyHash: newDummyHash(hasher),
	}
}

// Register creates a user and returns a session token for it.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	_, err := s.users.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, apperror.NewConflictError(msgEmailTaken, nil)
	case !errors.Is(err, apperror.ErrRecordNotFound):
		s.log.Error(ctx, "failed to look up user", "error", err)
		return nil, apperror.NewDatabaseError("failed to look up user", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.NewValidationError(apperror.FieldError{
				Field:   "password",
				Message: "password must be shorter than or equal to 72 bytes",
			})
		}
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if apperror.IsConflictError(err) {
			return nil, err
		}
		s.log.Error(ctx, "failed to create user", "error", err)
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID)
	return s.issue(user)
}

// Login authenticates by email and password and returns a session token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := s.validator.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperror.ErrRecordNotFound) {
			_ = s.hasher.Compare(s.dummyHash, req.Password)
			return nil, apperror.NewAuthError(msgInvalidCredentials, nil)
		}
		s.log.Error(ctx, "failed to look up user", "error", err)
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		if !errors.Is(err, ErrPasswordMismatch) {
			s.log.Warn(ctx, "password comparison failed", "user_id", user.ID, "error", err)
		}
		return nil, apperror.NewAuthError(msgInvalidCredentials, nil)
	}

	return s.issue(user)
}

// Verify resolves a session token into the caller's identity.
func (s *Service) Verify(token string) (*Identity, error) {
	return s.tokens.Verify(token)
}

func (s *Service) issue(user *User) (*TokenResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}
	return &TokenResponse{Token: token}, nil
}

// newDummyHash hashes dummyPassword with hasher. If hasher fails, a bcrypt hash
// at the default cost is used so unknown-email logins still pay for a compare.
func newDummyHash(hasher PasswordHasher) string {
	if hash, err := hasher.Hash(dummyPassword); err == nil {
		return hash
	}
	hash, _ := bcrypt.GenerateFromPassword([]byte(dummyPassword), bcrypt.DefaultCost)
	return string(hash)
}
