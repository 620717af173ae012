package ports

import (
	"context"

	"github.com/care-io/booking-system/internal/core/domain"
)

// BookingFilter carries the query parameters for listing bookings.
type BookingFilter struct {
	UserEmail string                 // empty = all bookings (admin view)
	Statuses  []domain.BookingStatus // optional set-membership filter
}

// BookingRepository defines persistence operations for the bookings collection.
// List results are always ordered newest-first by creation time.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]*domain.Booking, error)
	// UpdateStatus sets the status unconditionally and returns the updated
	// record. There is no version check: concurrent updates race with
	// last-write-wins semantics.
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	Count(ctx context.Context) (int64, error)
}
