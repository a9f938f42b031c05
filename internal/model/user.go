package model

// Role is the kind of account registered with the backend.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User represents a marketplace account as returned by the backend.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Registration string `json:"registration"`
	Role         Role   `json:"type,omitempty"`
}

// UserUpdate is the payload accepted by PUT /users/:id.
type UserUpdate struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Registration string `json:"registration"`
}

// Registration is the payload accepted by POST /auth/register.
type Registration struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Registration string `json:"registration"`
	Role         Role   `json:"type"`
	Password     string `json:"password"`
	Phone        string `json:"phone"`
}

// Credentials is the payload accepted by POST /auth/login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the bearer token issued by the backend.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}
