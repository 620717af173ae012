package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/care-io/booking-system/internal/core/domain"
	"github.com/care-io/booking-system/internal/core/ports"
)

// BookingService implements the booking lifecycle: creation with derived
// pricing, listing, and role-gated status changes.
type BookingService struct {
	repo    ports.BookingRepository
	notices ports.NoticeEnqueuer
	logger  zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, notices ports.NoticeEnqueuer, logger zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, notices: notices, logger: logger}
}

// Create validates the request, derives the total cost from the rate card,
// and persists the booking with status Pending. The invoice notice is
// enqueued only after the insert commits; its delivery never affects the
// outcome of this call.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	serviceType := domain.ServiceType(input.Service)
	total, err := domain.Quote(serviceType, input.Duration)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		Service:   serviceType,
		Duration:  input.Duration,
		Division:  input.Division,
		District:  input.District,
		City:      input.City,
		Area:      input.Area,
		Address:   input.Address,
		TotalCost: total,
		Status:    domain.StatusPending,
		UserEmail: strings.ToLower(input.UserEmail),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, booking)
	if err != nil {
		s.logger.Error().Err(err).Str("service", input.Service).Msg("failed to create booking")
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", created.ID).
		Str("service", string(created.Service)).
		Int64("total_cost", created.TotalCost).
		Msg("booking created")

	s.enqueueNotice(created)
	return created, nil
}

// List returns bookings newest-first. Non-admin callers always get their own
// bookings regardless of the requested filter.
func (s *BookingService) List(ctx context.Context, input ports.ListBookingsInput) ([]*domain.Booking, error) {
	filter := ports.BookingFilter{UserEmail: strings.ToLower(input.UserEmail)}
	if input.ActorRole != domain.RoleAdmin {
		filter.UserEmail = strings.ToLower(input.ActorEmail)
	}
	return s.repo.List(ctx, filter)
}

// UpdateStatus applies a status change under the actor's transition rules:
// owners may only cancel their own pending booking, administrators may set
// any status from any status. The current status is read first solely to
// evaluate the owner rule; the write itself is unconditional (last write
// wins).
func (s *BookingService) UpdateStatus(ctx context.Context, input ports.UpdateStatusInput) (*domain.Booking, error) {
	if !input.Status.Known() {
		return nil, fmt.Errorf("%w: %q", domain.ErrForbiddenTransition, input.Status)
	}

	current, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.ActorRole != domain.RoleAdmin {
		if !strings.EqualFold(current.UserEmail, input.ActorEmail) {
			return nil, domain.ErrForbidden
		}
		if !domain.OwnerCanTransition(current.Status, input.Status) {
			return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrForbiddenTransition, current.Status, input.Status)
		}
	}

	updated, err := s.repo.UpdateStatus(ctx, input.ID, input.Status)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", updated.ID).
		Str("from", string(current.Status)).
		Str("to", string(updated.Status)).
		Str("actor_role", input.ActorRole).
		Msg("booking status changed")

	s.enqueueNotice(updated)
	return updated, nil
}

func (s *BookingService) enqueueNotice(b *domain.Booking) {
	rate, _ := domain.RateFor(b.Service)
	s.notices.Enqueue(ports.BookingNotice{
		BookingID: b.ID,
		UserEmail: b.UserEmail,
		Service:   b.Service,
		Duration:  b.Duration,
		Unit:      rate.Unit,
		Division:  b.Division,
		TotalCost: b.TotalCost,
		Status:    b.Status,
	})
}

func validateCreate(input ports.CreateBookingInput) error {
	switch {
	case strings.TrimSpace(input.Service) == "":
		return fmt.Errorf("%w: service", domain.ErrMissingField)
	case input.Duration == 0:
		return fmt.Errorf("%w: duration", domain.ErrMissingField)
	case strings.TrimSpace(input.UserEmail) == "":
		return fmt.Errorf("%w: userEmail", domain.ErrMissingField)
	case strings.TrimSpace(input.Division) == "":
		return fmt.Errorf("%w: division", domain.ErrMissingField)
	case strings.TrimSpace(input.Address) == "":
		return fmt.Errorf("%w: address", domain.ErrMissingField)
	}
	if !domain.ServiceType(input.Service).Known() {
		return domain.ErrInvalidService
	}
	return nil
}
