package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCompleted BookingStatus = "Completed"
	StatusCancelled BookingStatus = "Cancelled"
)

// Actor roles recognised by status-changing operations.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var ErrBookingNotFound = errors.New("booking not found")
var ErrForbiddenTransition = errors.New("status transition not permitted")
var ErrForbidden = errors.New("access forbidden")
var ErrMissingField = errors.New("missing required field")

// Known reports whether s is one of the four booking statuses.
func (s BookingStatus) Known() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Realized reports whether a booking in this status counts toward revenue.
func (s BookingStatus) Realized() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

// OwnerCanTransition reports whether a booking owner may move a booking from
// one status to another. Owners may only cancel a pending booking; every other
// change is reserved for administrators, who are not restricted at all (an
// admin may set any status from any status, including reopening a cancelled
// booking).
func OwnerCanTransition(from, to BookingStatus) bool {
	return from == StatusPending && to == StatusCancelled
}

// Booking is a persisted record of one requested care service. The location
// fields are stored flat on the document, mirroring the bookings collection
// schema. TotalCost is derived once at creation and never recomputed.
type Booking struct {
	ID        string        `json:"id"`
	Service   ServiceType   `json:"service"`
	Duration  int           `json:"duration"`
	Division  string        `json:"division"`
	District  string        `json:"district,omitempty"`
	City      string        `json:"city,omitempty"`
	Area      string        `json:"area,omitempty"`
	Address   string        `json:"address"`
	TotalCost int64         `json:"totalCost"`
	Status    BookingStatus `json:"status"`
	UserEmail string        `json:"userEmail"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
