package service

import (
	"context"
	"fmt"
	"strings"

	"sharehub/internal/model"
	"sharehub/internal/repository"
)

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, reg model.Registration) (string, error)
	ForgotPassword(ctx context.Context, email string) error
}

type authService struct {
	authRepo repository.AuthRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(authRepo repository.AuthRepository) AuthService {
	return &authService{authRepo: authRepo}
}

// Login exchanges credentials for an access token.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	token, err := s.authRepo.Login(ctx, model.Credentials{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return token, nil
}

// Register creates an account and returns its access token.
func (s *authService) Register(ctx context.Context, reg model.Registration) (string, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Registration = strings.TrimSpace(reg.Registration)

	token, err := s.authRepo.Register(ctx, reg)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return token, nil
}

// ForgotPassword asks the backend to e-mail a reset link.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	if err := s.authRepo.ForgotPassword(ctx, strings.TrimSpace(email)); err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}
	return nil
}
