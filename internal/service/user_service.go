package service

import (
	"context"
	"fmt"
	"strings"

	"sharehub/internal/errors"
	"sharehub/internal/model"
	"sharehub/internal/repository"
)

// UserService handles account operations.
type UserService interface {
	Get(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, id int64, update model.UserUpdate) (string, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	userRepo repository.UserRepository
	postRepo repository.PostRepository
}

// NewUserService creates a user service.
func NewUserService(userRepo repository.UserRepository, postRepo repository.PostRepository) UserService {
	return &userService{
		userRepo: userRepo,
		postRepo: postRepo,
	}
}

func (s *userService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return user, nil
}

// Update saves the profile and returns the token reissued by the backend.
func (s *userService) Update(ctx context.Context, id int64, update model.UserUpdate) (string, error) {
	update.Name = strings.TrimSpace(update.Name)
	update.Email = strings.TrimSpace(update.Email)
	update.Registration = strings.TrimSpace(update.Registration)

	token, err := s.userRepo.Update(ctx, id, update)
	if err != nil {
		return "", fmt.Errorf("update user %d: %w", id, err)
	}
	return token, nil
}

// Delete removes the account unless it still owns listings. The backend
// enforces the same rule.
func (s *userService) Delete(ctx context.Context, id int64) error {
	posts, err := s.postRepo.ListByUser(ctx, id)
	if err != nil {
		return fmt.Errorf("check posts of user %d: %w", id, err)
	}
	if len(posts) > 0 {
		return errors.ErrActivePosts
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
