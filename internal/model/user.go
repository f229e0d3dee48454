package model

import "time"

// Role is the numeric access level carried inside JWT claims.
type Role int

const (
	RoleAdmin      Role = 0
	RoleTeacher    Role = 1
	RoleTutor      Role = 2
	RoleSupertutor Role = 3
)

// Valid reports whether the role is one of the known levels.
func (r Role) Valid() bool {
	return r >= RoleAdmin && r <= RoleSupertutor
}

// String returns the canonical role name.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleTeacher:
		return "teacher"
	case RoleTutor:
		return "tutor"
	case RoleSupertutor:
		return "supertutor"
	default:
		return "unknown"
	}
}

// User represents an account that can log into the platform.
// Email is the primary key.
type User struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Role         Role      `json:"role"`
	CompanyID    *int      `json:"company_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ValidateRequest is the payload for token validation.
type ValidateRequest struct {
	Token string `json:"token" binding:"required"`
}

// ValidateResponse reports the identity bound to a valid token.
type ValidateResponse struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// BindCompanyRequest attaches an account to a company. A null company
// detaches it.
type BindCompanyRequest struct {
	CompanyID *int `json:"company_id" binding:"omitempty,min=1"`
}

// CreateUserRequest is the payload for creating a new account.
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	Role      *Role  `json:"role" binding:"required,min=0,max=3"`
	CompanyID *int   `json:"company_id" binding:"omitempty,min=1"`
}

// UpdateUserRequest is the payload for updating an existing account.
// An empty password keeps the current one.
type UpdateUserRequest struct {
	Password  string `json:"password" binding:"omitempty,min=6,max=128"`
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	Role      *Role  `json:"role" binding:"required,min=0,max=3"`
	CompanyID *int   `json:"company_id" binding:"omitempty,min=1"`
}
