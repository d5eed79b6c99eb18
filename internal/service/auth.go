package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ipapMaster/newsSimpleProject/internal/crypto"
	"github.com/ipapMaster/newsSimpleProject/internal/model"
	"github.com/ipapMaster/newsSimpleProject/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already registered")
)

// AuthService handles registration and credential checks.
type AuthService struct {
	repo   *repository.UserRepository
	hasher *crypto.PasswordHasher
	now    func() time.Time

	// dummyHash is verified against when the email is unknown, so both
	// failed-login paths pay the same hashing cost.
	dummyHash string
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.UserRepository, hasher *crypto.PasswordHasher) *AuthService {
	dummy, err := hasher.Hash("not-a-real-password")
	if err != nil {
		slog.Warn("creating dummy password hash failed", "error", err)
	}

	return &AuthService{
		repo:      repo,
		hasher:    hasher,
		now:       time.Now,
		dummyHash: dummy,
	}
}

// Register validates the form, rejects an already registered email and stores
// the new user with a hashed password. Logging the user in is up to the caller.
func (s *AuthService) Register(ctx context.Context, in model.RegisterInput) (*model.User, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return user, nil
}

// Authenticate returns the user owning email if password matches. An unknown
// email and a wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, in model.LoginInput) (*model.User, error) {
	if err := Validate(in); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			if s.dummyHash != "" {
				s.hasher.Verify(in.Password, s.dummyHash)
			}
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := s.hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !match {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
