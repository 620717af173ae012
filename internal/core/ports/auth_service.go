package ports

import (
	"context"

	"github.com/care-io/booking-system/internal/core/domain"
)

// RegisterInput carries a password registration. All fields are required.
type RegisterInput struct {
	Name     string
	Email    string
	Contact  string
	NID      string
	Password string
}

// FederatedInput carries the profile returned by an external identity
// provider after a successful sign-in.
type FederatedInput struct {
	Name  string
	Email string
	Image string
}

// AuthService implements account registration and token issuance.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// EnsureFederated upserts a password-less account for a federated
	// identity and issues a token for it.
	EnsureFederated(ctx context.Context, input FederatedInput) (string, *domain.User, error)
}
