package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailTaken = errors.New("email already registered")
var ErrContactTaken = errors.New("contact number already registered")
var ErrNIDTaken = errors.New("nid already registered")
var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidImageURL = errors.New("image must be an http(s) url")

// User models an account. Password-less users exist: federated sign-in creates
// a user with no stored hash, and such accounts cannot log in with a password.
// Contact and NID are unique only when present (sparse indexes).
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Contact      string    `json:"contact,omitempty"`
	NID          string    `json:"nid,omitempty"`
	Image        string    `json:"image,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// IsAuthorized reports whether the user satisfies the required role. There is
// no role hierarchy: admin endpoints require the admin role exactly.
func (u *User) IsAuthorized(requiredRole string) bool {
	if requiredRole == RoleAdmin {
		return u.Role == RoleAdmin
	}
	return true
}
