package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"places-api/internal/domain/user"
	"places-api/internal/repository"
	places_errors "places-api/pkg/errors"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup and login.
type AuthService struct {
	userRepo         repository.UserRepository
	bcryptCost       int
	placeholderImage string
}

// NewAuthService creates an auth service. An out of range bcryptCost falls
// back to bcrypt.DefaultCost.
func NewAuthService(userRepo repository.UserRepository, bcryptCost int, placeholderImage string) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:         userRepo,
		bcryptCost:       bcryptCost,
		placeholderImage: placeholderImage,
	}
}

// SignupInput is a validated signup request.
type SignupInput struct {
	Name     string
	Email    string
	Password string
	Places   string
}

// LoginInput is a login attempt.
type LoginInput struct {
	Email    string
	Password string
}

// Signup creates a user. The email pre-check is advisory: two concurrent
// signups can both pass it, and the unique index on users.email decides
// which insert wins. Both paths return ErrAlreadyExists.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (user.User, error) {
	input.Email = normalizeEmail(input.Email)

	_, err := s.userRepo.GetByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return user.User{}, places_errors.ErrAlreadyExists
	case !errors.Is(err, places_errors.ErrNotFound):
		return user.User{}, fmt.Errorf("lookup user by email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return user.User{}, fmt.Errorf("%w: %w", places_errors.ErrInvalidInput, err)
	}
	if err != nil {
		return user.User{}, fmt.Errorf("%w: hash password: %w", places_errors.ErrSaveFailed, err)
	}

	u := user.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Image:    s.placeholderImage,
		Places:   input.Places,
	}
	if err := s.userRepo.Create(ctx, &u); err != nil {
		if errors.Is(err, places_errors.ErrAlreadyExists) {
			return user.User{}, err
		}
		return user.User{}, fmt.Errorf("%w: %w", places_errors.ErrSaveFailed, err)
	}
	return u, nil
}

// Login verifies credentials. It issues nothing; callers only learn whether
// the email/password pair matched.
func (s *AuthService) Login(ctx context.Context, input LoginInput) error {
	u, err := s.userRepo.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, places_errors.ErrNotFound) {
			return places_errors.ErrUnauthorized
		}
		return fmt.Errorf("lookup user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)); err != nil {
		return places_errors.ErrUnauthorized
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
