package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultResendWindow = 5 * time.Minute

// ResendGuard throttles confirmation email re-sends per address, backed by
// Redis. Key format: confirmation_sent:<email>
type ResendGuard struct {
	client *redis.Client
	window time.Duration
}

// NewResendGuard creates a ResendGuard wrapping the given Redis client.
// If window <= 0, a default of 5 minutes is used.
func NewResendGuard(client *redis.Client, window time.Duration) *ResendGuard {
	if window <= 0 {
		window = defaultResendWindow
	}
	return &ResendGuard{client: client, window: window}
}

// RecentlySent reports whether a confirmation email went to this address
// within the throttle window.
func (g *ResendGuard) RecentlySent(ctx context.Context, email string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("resend guard check: %w", err)
	}
	return n > 0, nil
}

// MarkSent records a send for this address (expires after the window).
func (g *ResendGuard) MarkSent(ctx context.Context, email string) error {
	return g.client.Set(ctx, g.key(email), "1", g.window).Err()
}

func (g *ResendGuard) key(email string) string {
	return "confirmation_sent:" + email
}
