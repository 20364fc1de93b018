package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTokenBucket_BurstIsImmediate(t *testing.T) {
	t.Parallel()

	bucket := NewTokenBucket(time.Hour, 2)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 2; i++ {
		if err := bucket.Wait(ctx); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}
}

func TestTokenBucket_WaitHonoursContext(t *testing.T) {
	t.Parallel()

	bucket := NewTokenBucket(time.Hour, 1)
	if err := bucket.Wait(context.Background()); err != nil {
		t.Fatalf("first wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := bucket.Wait(ctx)
	if err == nil {
		t.Fatalf("expected second wait to fail while the bucket is empty")
	}
}

func TestTokenBucket_ZeroIntervalIsUnlimited(t *testing.T) {
	t.Parallel()

	bucket := NewTokenBucket(0, 1)
	for i := 0; i < 100; i++ {
		if err := bucket.Wait(context.Background()); err != nil {
			t.Fatalf("wait %d: %v", i, err)
		}
	}
}

func TestUnlimited_ReturnsContextError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := (Unlimited{}).Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
