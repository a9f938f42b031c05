package repository

import (
	"context"
	"fmt"

	"sharehub/internal/model"
)

// UserRepository defines account operations.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// Update returns the fresh access token issued for the edited account.
	Update(ctx context.Context, id int64, update model.UserUpdate) (string, error)
	Delete(ctx context.Context, id int64) error
}

type userRepository struct {
	backend Backend
}

// NewUserRepository builds a REST-backed repository.
func NewUserRepository(backend Backend) UserRepository {
	return &userRepository{backend: backend}
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := r.backend.Get(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, update model.UserUpdate) (string, error) {
	var resp model.TokenResponse
	if err := r.backend.Put(ctx, fmt.Sprintf("/users/%d", id), update, &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return r.backend.Delete(ctx, fmt.Sprintf("/users/%d", id))
}
