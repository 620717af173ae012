// Package metrics defines and registers all custom Prometheus metrics for the
// Care.IO booking API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "careio"

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings.
// Label:
//   - service: "baby-care", "elderly-care", or "sick-care"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by service type.",
	},
	[]string{"service"},
)

// BookingStatusChangesTotal counts status changes applied to bookings.
// Labels:
//   - status: the status that was set
//   - actor:  "admin" or "owner"
var BookingStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "booking_status_changes_total",
		Help:      "Total number of booking status changes, by new status and actor role.",
	},
	[]string{"status", "actor"},
)

// ── Notice metrics ────────────────────────────────────────────────────────────

// NoticesSentTotal counts invoice emails delivered successfully.
// Label:
//   - status: the booking status the notice announced
var NoticesSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notices_sent_total",
		Help:      "Total number of booking notices delivered, by booking status.",
	},
	[]string{"status"},
)

// NoticesFailedTotal counts notices that were not delivered.
// Label:
//   - reason: "relay_error" or "queue_full"
var NoticesFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notices_failed_total",
		Help:      "Total number of booking notices that failed delivery, by reason.",
	},
	[]string{"reason"},
)

// NoticeDedupTotal counts dedup decisions on outgoing notices.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new notice, sent)
var NoticeDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notice_dedup_total",
		Help:      "Total number of notice dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// NoticeQueueDepth tracks the number of notices waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index
var NoticeQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notice_queue_depth",
		Help:      "Current number of notices pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// NoticeDeliveryDuration measures how long a single SMTP delivery takes.
var NoticeDeliveryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "notice_delivery_duration_seconds",
		Help:      "Duration of a single booking notice delivery attempt.",
		Buckets:   prometheus.DefBuckets,
	},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentIntentsTotal counts payment intent requests by outcome.
// Label:
//   - outcome: "created", "invalid_amount", "declined", or "provider_error"
var PaymentIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_intents_total",
		Help:      "Total number of payment intent requests, by outcome.",
	},
	[]string{"outcome"},
)
