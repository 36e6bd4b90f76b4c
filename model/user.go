package model

import (
	"strings"
	"time"

	"github.com/muhammadheryan/classifieds/constant"
)

// UserEntity represents the users table entity
type UserEntity struct {
	ID           uint64        `db:"id" json:"id"`
	Email        string        `db:"email" json:"email"`
	PasswordHash string        `db:"password_hash" json:"-"`
	FirstName    string        `db:"first_name" json:"first_name"`
	LastName     string        `db:"last_name" json:"last_name"`
	Phone        string        `db:"phone" json:"phone"`
	ImagePath    *string       `db:"image_path" json:"image_path,omitempty"`
	Role         constant.Role `db:"role" json:"role"`
	CreatedAt    time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt    *time.Time    `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID    uint64
	Email string
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Username  string        `json:"username" validate:"required,email"`
	Password  string        `json:"password" validate:"required,min=8,max=72"`
	FirstName string        `json:"firstName" validate:"max=64"`
	LastName  string        `json:"lastName" validate:"max=64"`
	Phone     string        `json:"phone" validate:"max=32"`
	Role      constant.Role `json:"role,omitempty" validate:"omitempty,oneof=USER ADMIN"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}

type NewPasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
}

// UpdateUserRequest carries a partial profile update; nil fields are kept.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,max=64"`
	LastName  *string `json:"lastName" validate:"omitempty,max=64"`
	Phone     *string `json:"phone" validate:"omitempty,max=32"`
}

type UserResponse struct {
	ID        uint64        `json:"id"`
	Email     string        `json:"email"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Phone     string        `json:"phone"`
	Image     *string       `json:"image"`
	Role      constant.Role `json:"role"`
}

// Principal is the authenticated caller of a request.
type Principal struct {
	ID    uint64
	Email string
	Role  constant.Role
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == constant.RoleAdmin
}

// NormalizeEmail folds an email to its lookup key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
