package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/care-io/booking-system/internal/api/metrics"
	"github.com/care-io/booking-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Deduper suppresses repeat deliveries of the same booking/status notice.
type Deduper interface {
	AlreadySent(ctx context.Context, bookingID, status string) (bool, error)
	Mark(ctx context.Context, bookingID, status string) error
}

// Dispatcher delivers booking notices asynchronously through a fixed set of
// workers, sharded by booking id so notices for one booking stay ordered.
// Delivery failures are logged and counted, never surfaced: the booking write
// has already committed by the time a notice is enqueued.
type Dispatcher struct {
	workers  []chan ports.BookingNotice
	notifier ports.Notifier
	dedup    Deduper
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers workers. If
// numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, dedup Deduper, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.BookingNotice, numWorkers),
		notifier: notifier,
		dedup:    dedup,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.BookingNotice, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a notice to the worker responsible for its booking. When the
// worker's buffer is full the notice is dropped rather than blocking the
// request path.
func (d *Dispatcher) Enqueue(notice ports.BookingNotice) {
	i := d.shardIndex(notice.BookingID)
	select {
	case d.workers[i] <- notice:
		metrics.NoticeQueueDepth.WithLabelValues(fmt.Sprint(i)).Set(float64(len(d.workers[i])))
	default:
		metrics.NoticesFailedTotal.WithLabelValues("queue_full").Inc()
		d.log.Warn().Str("booking_id", notice.BookingID).Msg("notice queue full, dropping notice")
	}
}

// shardIndex maps a booking id deterministically to a worker index.
func (d *Dispatcher) shardIndex(bookingID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(bookingID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.BookingNotice) {
	for {
		select {
		case <-ctx.Done():
			return
		case notice, ok := <-ch:
			if !ok {
				return
			}
			d.deliver(ctx, notice)
			metrics.NoticeQueueDepth.WithLabelValues(fmt.Sprint(id)).Set(float64(len(ch)))
		}
	}
}

// deliver sends one notice, skipping duplicates. A dedup store outage is not
// a reason to stay silent, so the notice is sent anyway.
func (d *Dispatcher) deliver(ctx context.Context, notice ports.BookingNotice) {
	status := string(notice.Status)

	sent, err := d.dedup.AlreadySent(ctx, notice.BookingID, status)
	if err != nil {
		d.log.Warn().Err(err).Str("booking_id", notice.BookingID).Msg("notice dedup check failed, sending anyway")
	} else if sent {
		metrics.NoticeDedupTotal.WithLabelValues("hit").Inc()
		d.log.Debug().Str("booking_id", notice.BookingID).Str("status", status).Msg("duplicate notice skipped")
		return
	} else {
		metrics.NoticeDedupTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	if err := d.notifier.SendBookingNotice(ctx, notice); err != nil {
		metrics.NoticesFailedTotal.WithLabelValues("relay_error").Inc()
		d.log.Error().Err(err).
			Str("booking_id", notice.BookingID).
			Str("user_email", notice.UserEmail).
			Msg("notice delivery failed")
		return
	}

	metrics.NoticesSentTotal.WithLabelValues(status).Inc()
	metrics.NoticeDeliveryDuration.Observe(time.Since(start).Seconds())

	if err := d.dedup.Mark(ctx, notice.BookingID, status); err != nil {
		d.log.Warn().Err(err).Str("booking_id", notice.BookingID).Msg("failed to set notice dedup key")
	}

	d.log.Info().
		Str("booking_id", notice.BookingID).
		Str("status", status).
		Msg("booking notice sent")
}
