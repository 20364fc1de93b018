package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/riskibarqy/football-data/internal/platform/logging"
	"github.com/riskibarqy/football-data/internal/usecase"
)

type recordingRunner struct {
	mu    sync.Mutex
	calls map[string]int
}

func newRecordingRunner() *recordingRunner {
	return &recordingRunner{calls: map[string]int{}}
}

func (r *recordingRunner) record(_ context.Context, op string) (usecase.SyncResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[op]++
	return usecase.SyncResult{Operation: op, Success: 1}, nil
}

func (r *recordingRunner) SyncLiveMatches(ctx context.Context) (usecase.SyncResult, error) {
	return r.record(ctx, usecase.SyncOperationLiveMatches)
}

func (r *recordingRunner) SyncUpcomingMatches(ctx context.Context, _ int64) (usecase.SyncResult, error) {
	return r.record(ctx, usecase.SyncOperationUpcomingMatches)
}

func (r *recordingRunner) SyncFinishedMatches(ctx context.Context, _ int64) (usecase.SyncResult, error) {
	return r.record(ctx, usecase.SyncOperationFinishedMatches)
}

func (r *recordingRunner) SyncStandings(ctx context.Context, _ int64) (usecase.SyncResult, error) {
	return r.record(ctx, usecase.SyncOperationStandings)
}

func (r *recordingRunner) SyncLeagues(ctx context.Context) (usecase.SyncResult, error) {
	return r.record(ctx, usecase.SyncOperationLeagues)
}

func (r *recordingRunner) SyncTopScorers(ctx context.Context, _ int64, _ int) (usecase.SyncResult, error) {
	return r.record(ctx, usecase.SyncOperationTopScorers)
}

func TestSyncScheduler_StartIsIdempotent(t *testing.T) {
	t.Parallel()

	scheduler, err := usecase.NewSyncScheduler(newRecordingRunner(), usecase.DefaultSyncScheduleConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("NewSyncScheduler error: %v", err)
	}
	t.Cleanup(func() { scheduler.Stop() })

	started, err := scheduler.Start()
	if err != nil || !started {
		t.Fatalf("first Start = %v, %v; want true, nil", started, err)
	}
	started, err = scheduler.Start()
	if err != nil || started {
		t.Fatalf("second Start = %v, %v; want false, nil", started, err)
	}

	status := scheduler.Status()
	if !status.Running || status.StartedAt == nil {
		t.Fatalf("expected running status, got %+v", status)
	}
	if len(status.Jobs) != 6 {
		t.Fatalf("expected six jobs, got %d", len(status.Jobs))
	}
	for _, job := range status.Jobs {
		if job.Next == nil {
			t.Fatalf("job %s has no next fire time", job.Name)
		}
	}

	if !scheduler.Stop() {
		t.Fatalf("expected Stop to stop the single running schedule")
	}
	if scheduler.Stop() {
		t.Fatalf("expected second Stop to be a no-op")
	}
	if scheduler.Status().Running {
		t.Fatalf("expected scheduler stopped")
	}
}

func TestSyncScheduler_StopWithoutStartIsNoop(t *testing.T) {
	t.Parallel()

	scheduler, err := usecase.NewSyncScheduler(newRecordingRunner(), usecase.DefaultSyncScheduleConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("NewSyncScheduler error: %v", err)
	}
	if scheduler.Stop() {
		t.Fatalf("expected Stop on idle scheduler to report false")
	}
}

func TestSyncScheduler_CanRestartAfterStop(t *testing.T) {
	t.Parallel()

	scheduler, err := usecase.NewSyncScheduler(newRecordingRunner(), usecase.DefaultSyncScheduleConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("NewSyncScheduler error: %v", err)
	}
	t.Cleanup(func() { scheduler.Stop() })

	for i := 0; i < 2; i++ {
		if started, err := scheduler.Start(); err != nil || !started {
			t.Fatalf("Start #%d = %v, %v", i+1, started, err)
		}
		if !scheduler.Stop() {
			t.Fatalf("Stop #%d reported not running", i+1)
		}
	}
}

func TestSyncScheduler_RejectsInvalidSpec(t *testing.T) {
	t.Parallel()

	cfg := usecase.DefaultSyncScheduleConfig()
	cfg.Live = "every now and then"

	_, err := usecase.NewSyncScheduler(newRecordingRunner(), cfg, logging.NewNop())
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSyncScheduler_EmptySpecDisablesJob(t *testing.T) {
	t.Parallel()

	cfg := usecase.DefaultSyncScheduleConfig()
	cfg.TopScorers = ""
	cfg.Leagues = "  "

	scheduler, err := usecase.NewSyncScheduler(newRecordingRunner(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("NewSyncScheduler error: %v", err)
	}
	if got := len(scheduler.Status().Jobs); got != 4 {
		t.Fatalf("expected 4 enabled jobs, got %d", got)
	}
	if _, err := scheduler.RunJob(context.Background(), usecase.SyncJobTopScorers); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected disabled job to be unknown, got %v", err)
	}
}

func TestSyncScheduler_RunJobStoresLastResult(t *testing.T) {
	t.Parallel()

	runner := newRecordingRunner()
	scheduler, err := usecase.NewSyncScheduler(runner, usecase.DefaultSyncScheduleConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("NewSyncScheduler error: %v", err)
	}

	result, err := scheduler.RunJob(context.Background(), usecase.SyncJobStandings)
	if err != nil {
		t.Fatalf("RunJob error: %v", err)
	}
	if result.Operation != usecase.SyncOperationStandings {
		t.Fatalf("unexpected result: %+v", result)
	}

	for _, job := range scheduler.Status().Jobs {
		if job.Name != usecase.SyncJobStandings {
			if job.LastResult != nil {
				t.Fatalf("job %s should not have a result yet", job.Name)
			}
			continue
		}
		if job.LastResult == nil || job.LastResult.Success != 1 {
			t.Fatalf("expected stored result for standings, got %+v", job)
		}
	}
	if runner.calls[usecase.SyncOperationStandings] != 1 {
		t.Fatalf("expected standings sync to run once, got %d", runner.calls[usecase.SyncOperationStandings])
	}
}
