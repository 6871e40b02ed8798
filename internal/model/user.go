package model

import (
	"context"
	"time"
)

// Role is a user's access level.
type Role string

const (
	// RoleAdmin can manage users and licenses and bypasses license gating.
	RoleAdmin Role = "admin"
	// RoleUser is a regular cashier account.
	RoleUser Role = "user"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	// Create fails with ErrUsernameTaken or ErrEmailTaken on collision.
	Create(ctx context.Context, user User) error
	// Update fails with ErrNotFound for unknown ids and with ErrUsernameTaken or
	// ErrEmailTaken when another user already holds the value.
	Update(ctx context.Context, user User) error
	Delete(ctx context.Context, id string) error
	// ReplaceAdmins removes every admin-role user and stores admin first. It fails
	// with ErrUsernameTaken or ErrEmailTaken when a remaining user holds admin's username or email.
	ReplaceAdmins(ctx context.Context, admin User) error
}

// User represents a stored user with authentication material.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"fullName"`
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
	PasswordHash string     `json:"passwordHash"`
	PasswordSalt string     `json:"passwordSalt"`
}

// UserView is a user without password material.
type UserView struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FullName  string     `json:"fullName"`
	Role      Role       `json:"role"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Sanitize strips the password hash and salt.
func (u User) Sanitize() UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
		UpdatedAt: u.UpdatedAt,
	}
}

// Matches reports whether login equals the username or the email (case-sensitive).
func (u User) Matches(login string) bool {
	return u.Username == login || u.Email == login
}

// RegisterParams contains parameters to create a user.
type RegisterParams struct {
	Username string
	Email    string
	FullName string
	Password string
	Role     Role
}

// UpdateUserParams replaces the editable fields of a user.
// An empty NewPassword keeps the current password.
type UpdateUserParams struct {
	UserID      string
	Username    string
	Email       string
	FullName    string
	Role        Role
	IsActive    bool
	NewPassword string
}

// PasswordHasher derives and checks salted password digests.
type PasswordHasher interface {
	HashNew(password string) (digest, salt string, err error)
	Verify(password, digest, salt string) (ok bool, needsRehash bool)
}
