package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kbatra339/mindease-backend/internal/apperr"
	"github.com/kbatra339/mindease-backend/internal/models"
	"github.com/kbatra339/mindease-backend/internal/store"
	"github.com/kbatra339/mindease-backend/pkg/utils"
)

// AccountService handles registration, login, and password changes.
type AccountService struct {
	users store.UserStore
}

func NewAccountService(users store.UserStore) *AccountService {
	return &AccountService{users: users}
}

// Register creates a new user with a hashed password. Duplicate usernames
// report apperr.ErrConflict.
func (s *AccountService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", apperr.ErrValidation)
	}

	_, err := s.users.Find(ctx, username)
	if err == nil {
		return fmt.Errorf("%w: username already exists", apperr.ErrConflict)
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return err
	}

	digest, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	return s.users.Insert(ctx, models.User{Username: username, Password: digest})
}

// Login verifies the credentials. Both a missing user and a wrong password
// report apperr.ErrAuth so the response doesn't leak which usernames exist.
func (s *AccountService) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", apperr.ErrValidation)
	}

	user, err := s.users.Find(ctx, username)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.ErrAuth
	}
	if err != nil {
		return err
	}

	ok, err := utils.VerifyPassword(password, user.Password)
	if err != nil || !ok {
		return apperr.ErrAuth
	}
	return nil
}

// ChangePassword replaces the stored digest after verifying the old password.
func (s *AccountService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: old password and new password are required", apperr.ErrValidation)
	}

	user, err := s.users.Find(ctx, username)
	if err != nil {
		return err
	}

	ok, err := utils.VerifyPassword(oldPassword, user.Password)
	if err != nil || !ok {
		return fmt.Errorf("%w: incorrect old password", apperr.ErrAuth)
	}

	digest, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.users.UpdatePassword(ctx, username, digest)
}
