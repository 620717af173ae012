package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const noticeTTL = 24 * time.Hour

// NoticeDedup suppresses repeat invoice emails. A booking/status pair is
// emailed at most once per TTL window, so a retried status write does not
// re-notify the requester.
// Key format: notice:<booking_id>:<status>
type NoticeDedup struct {
	client *redis.Client
}

// NewNoticeDedup creates a NoticeDedup wrapping the given Redis client.
func NewNoticeDedup(client *redis.Client) *NoticeDedup {
	return &NoticeDedup{client: client}
}

// AlreadySent reports whether a notice for this booking and status has been
// delivered within the TTL window.
func (d *NoticeDedup) AlreadySent(ctx context.Context, bookingID, status string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(bookingID, status)).Result()
	if err != nil {
		return false, fmt.Errorf("notice dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that a notice for this booking and status has been delivered.
func (d *NoticeDedup) Mark(ctx context.Context, bookingID, status string) error {
	return d.client.Set(ctx, d.key(bookingID, status), "1", noticeTTL).Err()
}

func (d *NoticeDedup) key(bookingID, status string) string {
	return fmt.Sprintf("notice:%s:%s", bookingID, status)
}
