package ports

import (
	"context"

	"github.com/care-io/booking-system/internal/core/domain"
)

// Stats is the aggregate view shown on the admin dashboard. TotalRevenue sums
// totalCost over Confirmed and Completed bookings only; Pending and Cancelled
// bookings contribute nothing.
type Stats struct {
	TotalBookings int64 `json:"totalBookings"`
	TotalRevenue  int64 `json:"totalRevenue"`
	TotalUsers    int64 `json:"totalUsers"`
}

// AdminService provides the read-side aggregations and user management
// operations behind the admin views.
type AdminService interface {
	// ComputeStats performs a full scan on every call; nothing is cached.
	ComputeStats(ctx context.Context) (*Stats, error)
	// PaymentHistory returns realized bookings (Confirmed or Completed),
	// newest first.
	PaymentHistory(ctx context.Context) ([]*domain.Booking, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUserRole(ctx context.Context, id, role string) (*domain.User, error)
}

// ProfileService lets an authenticated user edit their own profile.
type ProfileService interface {
	UpdateProfile(ctx context.Context, email string, update ProfileUpdate) (*domain.User, error)
}
