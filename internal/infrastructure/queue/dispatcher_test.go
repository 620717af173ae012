package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/care-io/booking-system/internal/core/domain"
	"github.com/care-io/booking-system/internal/core/ports"
)

var testLogger = zerolog.Nop()

type stubNotifier struct {
	mu   sync.Mutex
	sent []ports.BookingNotice
	err  error
}

func (n *stubNotifier) SendBookingNotice(_ context.Context, notice ports.BookingNotice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, notice)
	return nil
}

func (n *stubNotifier) sentCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type stubDeduper struct {
	mu       sync.Mutex
	seen     map[string]bool
	checkErr error
}

func newStubDeduper() *stubDeduper {
	return &stubDeduper{seen: make(map[string]bool)}
}

func (d *stubDeduper) key(bookingID, status string) string {
	return bookingID + ":" + status
}

func (d *stubDeduper) AlreadySent(_ context.Context, bookingID, status string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[d.key(bookingID, status)], nil
}

func (d *stubDeduper) Mark(_ context.Context, bookingID, status string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen[d.key(bookingID, status)] = true
	return nil
}

func notice(id string, status domain.BookingStatus) ports.BookingNotice {
	return ports.BookingNotice{
		BookingID: id,
		UserEmail: "a@x.com",
		Service:   domain.ServiceBabyCare,
		Duration:  2,
		TotalCost: 1600,
		Status:    status,
	}
}

func TestDispatcher_DeliversNotice(t *testing.T) {
	notifier := &stubNotifier{}
	d := NewDispatcher(2, notifier, newStubDeduper(), testLogger)

	d.deliver(context.Background(), notice("bk_1", domain.StatusPending))

	if notifier.sentCount() != 1 {
		t.Fatalf("expected 1 delivery, got %d", notifier.sentCount())
	}
}

func TestDispatcher_DedupSkipsRepeat(t *testing.T) {
	notifier := &stubNotifier{}
	d := NewDispatcher(2, notifier, newStubDeduper(), testLogger)

	n := notice("bk_1", domain.StatusConfirmed)
	d.deliver(context.Background(), n)
	d.deliver(context.Background(), n)

	if notifier.sentCount() != 1 {
		t.Fatalf("duplicate notice must be skipped, got %d deliveries", notifier.sentCount())
	}
}

func TestDispatcher_DistinctStatusesAreNotDuplicates(t *testing.T) {
	notifier := &stubNotifier{}
	d := NewDispatcher(2, notifier, newStubDeduper(), testLogger)

	d.deliver(context.Background(), notice("bk_1", domain.StatusPending))
	d.deliver(context.Background(), notice("bk_1", domain.StatusConfirmed))

	if notifier.sentCount() != 2 {
		t.Fatalf("same booking, different statuses must both deliver, got %d", notifier.sentCount())
	}
}

func TestDispatcher_SendsWhenDedupCheckFails(t *testing.T) {
	notifier := &stubNotifier{}
	dedup := newStubDeduper()
	dedup.checkErr = errors.New("store down")
	d := NewDispatcher(2, notifier, dedup, testLogger)

	d.deliver(context.Background(), notice("bk_1", domain.StatusPending))

	if notifier.sentCount() != 1 {
		t.Fatalf("a dedup outage must not suppress the notice, got %d deliveries", notifier.sentCount())
	}
}

func TestDispatcher_DeliveryFailureIsSwallowed(t *testing.T) {
	notifier := &stubNotifier{err: errors.New("relay refused")}
	dedup := newStubDeduper()
	d := NewDispatcher(2, notifier, dedup, testLogger)

	// Must not panic or propagate.
	d.deliver(context.Background(), notice("bk_1", domain.StatusPending))

	// A failed send must not be marked as sent, so a retry can deliver it.
	sent, _ := dedup.AlreadySent(context.Background(), "bk_1", string(domain.StatusPending))
	if sent {
		t.Error("failed delivery must not set the dedup key")
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(4, &stubNotifier{}, newStubDeduper(), testLogger)

	for _, id := range []string{"bk_1", "bk_2", "64f1a2", ""} {
		first := d.shardIndex(id)
		if first < 0 || first >= 4 {
			t.Fatalf("shard index out of range for %q: %d", id, first)
		}
		for i := 0; i < 5; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shard index for %q not stable: %d vs %d", id, first, got)
			}
		}
	}
}

func TestDispatcher_EnqueueEndToEnd(t *testing.T) {
	notifier := &stubNotifier{}
	d := NewDispatcher(2, notifier, newStubDeduper(), testLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(notice("bk_1", domain.StatusPending))
	d.Enqueue(notice("bk_2", domain.StatusPending))

	deadline := time.After(2 * time.Second)
	for notifier.sentCount() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected 2 deliveries, got %d", notifier.sentCount())
		case <-time.After(10 * time.Millisecond):
		}
	}
}
