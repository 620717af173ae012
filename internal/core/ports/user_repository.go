package ports

import (
	"context"

	"github.com/care-io/booking-system/internal/core/domain"
)

// ProfileUpdate holds the mutable profile fields. Empty strings leave the
// stored value untouched.
type ProfileUpdate struct {
	Name  string
	Image string
}

// UserRepository defines persistence operations for the users collection.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindConflict returns the first existing user whose email, contact, or
	// nid matches any of the given values. Empty arguments are ignored so
	// absence never conflicts (sparse uniqueness).
	FindConflict(ctx context.Context, email, contact, nid string) (*domain.User, error)
	// List returns all users ordered newest-first.
	List(ctx context.Context) ([]*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
