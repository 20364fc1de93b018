package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_DeduplicatesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "standings", nil
	}

	const workers = 16
	var started sync.WaitGroup
	var wg sync.WaitGroup
	started.Add(workers)
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			started.Done()
			v, err := store.GetOrLoad(context.Background(), "standings:39:2024", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "standings" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	boom := errors.New("boom")

	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, boom
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, boom) {
		t.Fatalf("expected first load error, got %v", err)
	}
	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}
	if v != "ok" || calls.Load() != 2 {
		t.Fatalf("unexpected value=%v calls=%d", v, calls.Load())
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "league:39", "premier")
	if _, ok := store.Get(context.Background(), "league:39"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "league:39"); ok {
		t.Fatalf("expected expired entry to miss")
	}
	if stats := store.Stats(); stats.Entries != 0 || stats.Hits != 1 || stats.Misses != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(0)
	store.Set(ctx, "team:id:1", 1)
	store.Set(ctx, "team:league:39", 2)
	store.Set(ctx, "league:id:39", 3)

	store.DeletePrefix(ctx, "team:")

	if _, ok := store.Get(ctx, "team:id:1"); ok {
		t.Fatalf("expected team entry removed")
	}
	if _, ok := store.Get(ctx, "league:id:39"); !ok {
		t.Fatalf("expected league entry kept")
	}
}

func TestStore_GetOrLoad_DropsLoadRacingInvalidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan any, 1)

	go func() {
		v, _ := store.GetOrLoad(ctx, "team:id:33", func(context.Context) (any, error) {
			close(entered)
			<-release
			return "stale", nil
		})
		done <- v
	}()

	<-entered
	store.DeletePrefix(ctx, "team:")
	close(release)
	if v := <-done; v != "stale" {
		t.Fatalf("expected the in-flight caller to get its load, got %v", v)
	}

	if _, ok := store.Get(ctx, "team:id:33"); ok {
		t.Fatalf("load that raced an invalidation must not be cached")
	}
	v, err := store.GetOrLoad(ctx, "team:id:33", func(context.Context) (any, error) {
		return "fresh", nil
	})
	if err != nil || v != "fresh" {
		t.Fatalf("expected fresh reload, got value=%v err=%v", v, err)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
