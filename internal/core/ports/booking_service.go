package ports

import (
	"context"

	"github.com/care-io/booking-system/internal/core/domain"
)

// CreateBookingInput carries all data needed to create a new booking.
// UserEmail comes from the authenticated session, never from the payload.
type CreateBookingInput struct {
	Service   string
	Duration  int
	Division  string
	District  string
	City      string
	Area      string
	Address   string
	UserEmail string
}

// ListBookingsInput scopes the list operation. The service forces UserEmail to
// the caller's own identity for non-admin actors.
type ListBookingsInput struct {
	ActorRole  string
	ActorEmail string
	UserEmail  string // admin only: filter by requester
}

// UpdateStatusInput carries a status change request. ActorRole decides which
// transitions are permitted; ActorEmail is used to verify ownership for
// non-admin actors.
type UpdateStatusInput struct {
	ID         string
	Status     domain.BookingStatus
	ActorRole  string
	ActorEmail string
}

// BookingService defines the booking lifecycle use cases.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	List(ctx context.Context, input ListBookingsInput) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Booking, error)
}
