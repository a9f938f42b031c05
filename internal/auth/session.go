package auth

import (
	"context"
	"strings"

	"github.com/golang-jwt/jwt/v4"

	"sharehub/internal/model"
)

// Claims is the payload the backend signs into access tokens.
type Claims struct {
	UserID int64      `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Role   model.Role `json:"type"`
	jwt.RegisteredClaims
}

// Session is the logged-in identity derived from a stored token.
// It drives UI branching only; the backend remains the authority.
type Session struct {
	ID    int64
	Name  string
	Email string
	Role  model.Role
	Token string
}

// IsTeacher reports whether the session belongs to a teacher account.
func (s *Session) IsTeacher() bool {
	return s != nil && s.Role == model.RoleTeacher
}

// IsStudent reports whether the session belongs to a student account.
func (s *Session) IsStudent() bool {
	return s != nil && s.Role == model.RoleStudent
}

// Owns reports whether the session user is userID.
func (s *Session) Owns(userID int64) bool {
	return s != nil && s.ID != 0 && s.ID == userID
}

var parser = jwt.NewParser()

// Read decodes token without verifying its signature. It returns nil when the
// token is absent or malformed.
func Read(token string) *Session {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}

	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	if claims.UserID == 0 {
		return nil
	}

	return &Session{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
		Token: token,
	}
}

type sessionKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session stored in ctx, or nil.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}
