// Package service implements the domain operations behind the HTTP handlers.
// Each operation performs its existence and duplicate checks before any
// write, so a failed operation leaves no partial state behind.
package service

import (
	"context"

	"huddle/internal/models"
	"huddle/internal/repository"
)

// UserService implements account operations.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a UserService backed by the given repository.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Authenticate checks the (username, password) pair against stored users.
// It returns an INVALID_CREDENTIALS error when no exact match exists; the
// caller cannot distinguish an unknown user from a wrong password. No
// session state is created.
func (s *UserService) Authenticate(ctx context.Context, username, password string) error {
	user, err := s.userRepo.FindByCredentials(ctx, username, password)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewInvalidCredentialsError()
	}
	return nil
}

// CreateUser inserts a user unconditionally: no empty-field validation and
// no duplicate-username check.
func (s *UserService) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	user := &models.User{
		Username: username,
		Password: password,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser overwrites both fields of an existing user. Fields absent from
// the request arrive as empty strings and are written as such; there is no
// partial update.
func (s *UserService) UpdateUser(ctx context.Context, id uint, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = username
	user.Password = password
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
