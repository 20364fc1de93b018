package resilience

import (
	"errors"
	"sync"
	"time"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker trips after consecutive failures and lets a limited number
// of probe calls through once the open timeout has elapsed.
type CircuitBreaker struct {
	mu  sync.Mutex
	cfg CircuitBreakerConfig

	state     CircuitState
	failures  int
	openedAt  time.Time
	inFlight  int
	successes int

	now           func() time.Time
	onStateChange func(from, to CircuitState)
}

func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	return &CircuitBreaker{
		cfg:   NormalizeCircuitBreakerConfig(cfg),
		state: CircuitStateClosed,
		now:   time.Now,
	}
}

// OnStateChange registers a callback invoked, under the breaker lock, on
// every transition.
func (b *CircuitBreaker) OnStateChange(fn func(from, to CircuitState)) {
	b.mu.Lock()
	b.onStateChange = fn
	b.mu.Unlock()
}

// Execute runs fn when the breaker admits the call. isFailure decides which
// errors count against the breaker; nil treats every error as a failure.
func (b *CircuitBreaker) Execute(fn func() error, isFailure func(error) bool) error {
	if !b.cfg.Enabled {
		return fn()
	}
	if err := b.Allow(); err != nil {
		return err
	}

	err := fn()
	if err != nil && (isFailure == nil || isFailure(err)) {
		b.RecordFailure()
		return err
	}
	b.RecordSuccess()
	return err
}

func (b *CircuitBreaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) < b.cfg.OpenTimeout {
			return ErrCircuitOpen
		}
		b.transition(CircuitStateHalfOpen)
	}

	if b.state == CircuitStateHalfOpen {
		if b.inFlight >= b.cfg.HalfOpenMaxReq {
			return ErrCircuitOpen
		}
		b.inFlight++
	}

	return nil
}

func (b *CircuitBreaker) RecordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures = 0
	case CircuitStateHalfOpen:
		b.releaseProbe()
		b.successes++
		if b.successes >= b.cfg.HalfOpenMaxReq && b.inFlight == 0 {
			b.transition(CircuitStateClosed)
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case CircuitStateClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.transition(CircuitStateOpen)
		}
	case CircuitStateHalfOpen:
		b.releaseProbe()
		b.transition(CircuitStateOpen)
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenTimeout {
		return CircuitStateHalfOpen
	}
	return b.state
}

func (b *CircuitBreaker) releaseProbe() {
	if b.inFlight > 0 {
		b.inFlight--
	}
}

func (b *CircuitBreaker) transition(to CircuitState) {
	from := b.state
	b.state = to
	b.inFlight = 0
	b.successes = 0
	switch to {
	case CircuitStateClosed:
		b.failures = 0
		b.openedAt = time.Time{}
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
	if from != to && b.onStateChange != nil {
		b.onStateChange(from, to)
	}
}
