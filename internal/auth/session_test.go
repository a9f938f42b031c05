package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharehub/internal/model"
)

func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func TestRead(t *testing.T) {
	valid := signToken(t, Claims{UserID: 7, Name: "Maria", Email: "maria@uc.br", Role: model.RoleStudent})
	expired := signToken(t, Claims{
		UserID: 8,
		Role:   model.RoleTeacher,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	tests := []struct {
		name     string
		token    string
		expected *Session
	}{
		{
			name:  "valid token",
			token: valid,
			expected: &Session{
				ID: 7, Name: "Maria", Email: "maria@uc.br", Role: model.RoleStudent, Token: valid,
			},
		},
		{
			name:     "expired token is still decoded",
			token:    expired,
			expected: &Session{ID: 8, Role: model.RoleTeacher, Token: expired},
		},
		{name: "empty", token: "", expected: nil},
		{name: "garbage", token: "not-a-jwt", expected: nil},
		{name: "bad base64 payload", token: "aaa.%%%.ccc", expected: nil},
		{name: "no user id", token: signToken(t, Claims{Name: "ghost"}), expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Read(tt.token))
		})
	}
}

func TestSessionPredicates(t *testing.T) {
	var anon *Session
	assert.False(t, anon.IsTeacher())
	assert.False(t, anon.IsStudent())
	assert.False(t, anon.Owns(1))

	teacher := &Session{ID: 3, Role: model.RoleTeacher}
	assert.True(t, teacher.IsTeacher())
	assert.False(t, teacher.IsStudent())
	assert.True(t, teacher.Owns(3))
	assert.False(t, teacher.Owns(4))
}

func TestContextRoundTrip(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	s := &Session{ID: 1}
	assert.Same(t, s, FromContext(NewContext(context.Background(), s)))
}
