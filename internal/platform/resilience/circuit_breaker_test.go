package resilience

import (
	"errors"
	"testing"
	"time"
)

func newTestBreaker(threshold int, timeout time.Duration, probes int) (*CircuitBreaker, *time.Time) {
	b := NewCircuitBreaker(CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      timeout,
		HalfOpenMaxReq:   probes,
	})
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestCircuitBreaker_OpensAndRecovers(t *testing.T) {
	t.Parallel()

	b, now := newTestBreaker(2, 5*time.Second, 1)

	var transitions []CircuitState
	b.OnStateChange(func(_, to CircuitState) { transitions = append(transitions, to) })

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}
	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second probe to be rejected, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}

	want := []CircuitState{CircuitStateOpen, CircuitStateHalfOpen, CircuitStateClosed}
	if len(transitions) != len(want) {
		t.Fatalf("unexpected transitions: %v", transitions)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("unexpected transitions: %v", transitions)
		}
	}
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	t.Parallel()

	b, now := newTestBreaker(1, time.Second, 1)
	b.RecordFailure()

	*now = now.Add(2 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected probe to pass: %v", err)
	}
	b.RecordFailure()

	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after failed probe, got %s", state)
	}
}

func TestCircuitBreaker_ExecuteIgnoresNonFailures(t *testing.T) {
	t.Parallel()

	b, _ := newTestBreaker(1, time.Minute, 1)
	notFound := errors.New("not found")

	err := b.Execute(func() error { return notFound }, func(err error) bool { return !errors.Is(err, notFound) })
	if !errors.Is(err, notFound) {
		t.Fatalf("expected fn error passthrough, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed, got %s", state)
	}

	_ = b.Execute(func() error { return errors.New("timeout") }, nil)
	if err := b.Execute(func() error { return nil }, nil); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open circuit to reject call, got %v", err)
	}
}

func TestCircuitBreaker_DisabledAlwaysRuns(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false, FailureThreshold: 1})
	calls := 0
	for i := 0; i < 3; i++ {
		_ = b.Execute(func() error { calls++; return errors.New("fail") }, nil)
	}
	if calls != 3 {
		t.Fatalf("expected every call to run, got %d", calls)
	}
}
