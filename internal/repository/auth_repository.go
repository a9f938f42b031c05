package repository

import (
	"context"
	"fmt"

	"sharehub/internal/model"
)

// AuthRepository defines the backend authentication operations.
type AuthRepository interface {
	Login(ctx context.Context, creds model.Credentials) (string, error)
	Register(ctx context.Context, reg model.Registration) (string, error)
	ForgotPassword(ctx context.Context, email string) error
}

type authRepository struct {
	backend Backend
}

// NewAuthRepository builds a REST-backed repository.
func NewAuthRepository(backend Backend) AuthRepository {
	return &authRepository{backend: backend}
}

func (r *authRepository) Login(ctx context.Context, creds model.Credentials) (string, error) {
	var resp model.TokenResponse
	if err := r.backend.Post(ctx, "/auth/login", creds, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("login: empty access token")
	}
	return resp.AccessToken, nil
}

func (r *authRepository) Register(ctx context.Context, reg model.Registration) (string, error) {
	var resp model.TokenResponse
	if err := r.backend.Post(ctx, "/auth/register", reg, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("register: empty access token")
	}
	return resp.AccessToken, nil
}

func (r *authRepository) ForgotPassword(ctx context.Context, email string) error {
	return r.backend.Post(ctx, "/auth/forget-password", map[string]string{"email": email}, nil)
}
