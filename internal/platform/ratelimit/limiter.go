package ratelimit

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"
)

// Limiter gates outbound calls. Wait blocks until a call may proceed or ctx
// is done.
type Limiter interface {
	Wait(ctx context.Context) error
}

// TokenBucket admits one call per interval with room for burst calls.
type TokenBucket struct {
	limiter *rate.Limiter
}

func NewTokenBucket(interval time.Duration, burst int) *TokenBucket {
	if burst < 1 {
		burst = 1
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &TokenBucket{limiter: rate.NewLimiter(limit, burst)}
}

func (b *TokenBucket) Wait(ctx context.Context) error {
	if err := b.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for rate limit token: %w", err)
	}
	return nil
}

// Unlimited never blocks.
type Unlimited struct{}

func (Unlimited) Wait(ctx context.Context) error {
	return ctx.Err()
}
