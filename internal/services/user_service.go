package services

import (
	"context"

	"places-api/internal/domain/user"
	"places-api/internal/repository"
)

// UserService lists users.
type UserService struct {
	repo repository.UserRepository
}

// NewUserService creates a user service.
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	return s.repo.GetAll(ctx)
}
