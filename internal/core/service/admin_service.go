package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/care-io/booking-system/internal/core/domain"
	"github.com/care-io/booking-system/internal/core/ports"
)

// AdminService implements the aggregate and user-management views behind the
// admin dashboard, plus self-service profile updates.
type AdminService struct {
	bookings ports.BookingRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewAdminService(bookings ports.BookingRepository, users ports.UserRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{bookings: bookings, users: users, logger: logger}
}

// realizedStatuses are the booking statuses whose cost counts as revenue.
var realizedStatuses = []domain.BookingStatus{domain.StatusConfirmed, domain.StatusCompleted}

// ComputeStats recomputes the dashboard aggregates from scratch on every
// call: total booking and user counts, and revenue summed over realized
// bookings only.
func (s *AdminService) ComputeStats(ctx context.Context) (*ports.Stats, error) {
	totalBookings, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, err
	}

	realized, err := s.bookings.List(ctx, ports.BookingFilter{Statuses: realizedStatuses})
	if err != nil {
		return nil, err
	}

	var revenue int64
	for _, b := range realized {
		revenue += b.TotalCost
	}

	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.Stats{
		TotalBookings: totalBookings,
		TotalRevenue:  revenue,
		TotalUsers:    totalUsers,
	}, nil
}

// PaymentHistory returns realized bookings newest-first.
func (s *AdminService) PaymentHistory(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookings.List(ctx, ports.BookingFilter{Statuses: realizedStatuses})
}

// ListUsers returns all accounts newest-first.
func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

// UpdateUserRole toggles an account between the user and admin roles.
func (s *AdminService) UpdateUserRole(ctx context.Context, id, role string) (*domain.User, error) {
	if id == "" || role == "" {
		return nil, domain.ErrMissingField
	}
	if role != domain.RoleUser && role != domain.RoleAdmin {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", id).Str("role", role).Msg("user role changed")
	return user, nil
}

// UpdateProfile edits the caller's own name and avatar. The image, when
// given, must be an absolute http(s) URL.
func (s *AdminService) UpdateProfile(ctx context.Context, email string, update ports.ProfileUpdate) (*domain.User, error) {
	update.Image = strings.TrimSpace(update.Image)
	if update.Image != "" &&
		!strings.HasPrefix(update.Image, "http://") &&
		!strings.HasPrefix(update.Image, "https://") {
		return nil, domain.ErrInvalidImageURL
	}
	return s.users.UpdateProfile(ctx, strings.ToLower(email), update)
}
