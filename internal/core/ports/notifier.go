package ports

import (
	"context"

	"github.com/care-io/booking-system/internal/core/domain"
)

// BookingNotice is the payload of a best-effort booking email. It carries a
// snapshot of the booking rather than a reference so delivery never depends on
// a later read.
type BookingNotice struct {
	BookingID string
	UserEmail string
	Service   domain.ServiceType
	Duration  int
	Unit      domain.BillingUnit
	Division  string
	TotalCost int64
	Status    domain.BookingStatus
}

// Notifier attempts a single synchronous delivery and reports the outcome to
// the caller. Implementations must not retry.
type Notifier interface {
	SendBookingNotice(ctx context.Context, notice BookingNotice) error
}

// NoticeEnqueuer hands a notice to the asynchronous delivery pipeline.
// Enqueue is called only after the primary state mutation has committed, and
// its implementation must never surface delivery failures to the caller.
type NoticeEnqueuer interface {
	Enqueue(notice BookingNotice)
}
