package services

import (
	"errors"
	"sync"
	"time"
)

// ErrCircuitBreakerOpen is returned without calling the ledger while the
// breaker is open.
var ErrCircuitBreakerOpen = errors.New("circuit breaker is open")

type CircuitBreakerState int

const (
	StateClosed CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

var stateNames = map[CircuitBreakerState]string{
	StateClosed:   "closed",
	StateOpen:     "open",
	StateHalfOpen: "half_open",
}

func (s CircuitBreakerState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return stateNames[StateClosed]
}

// CircuitBreakerConfig tunes the ledger breaker. HalfOpenSuccesses probes
// must succeed in a row before the breaker closes again.
type CircuitBreakerConfig struct {
	MaxFailures       int
	ResetTimeout      time.Duration
	HalfOpenSuccesses int
}

func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		MaxFailures:       5,
		ResetTimeout:      30 * time.Second,
		HalfOpenSuccesses: 1,
	}
}

// CircuitBreaker guards ledger reads. It opens after MaxFailures consecutive
// failures and lets probes through once ResetTimeout has passed since the
// last failure. OnStateChange, when set, runs outside the lock after every
// transition.
type CircuitBreaker struct {
	mu          sync.RWMutex
	config      CircuitBreakerConfig
	state       CircuitBreakerState
	failures    int
	probes      int
	lastFailure time.Time
	now         func() time.Time

	OnStateChange func(from, to CircuitBreakerState)
}

func NewCircuitBreaker(config CircuitBreakerConfig) *CircuitBreaker {
	config.MaxFailures = max(config.MaxFailures, 1)
	config.HalfOpenSuccesses = max(config.HalfOpenSuccesses, 1)
	return &CircuitBreaker{config: config, now: time.Now}
}

// Execute runs fn unless the breaker is open and records the outcome.
// A cancelled or expired caller context is not held against the ledger.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	if cb.IsOpen() {
		return ErrCircuitBreakerOpen
	}

	err := fn()
	if err == nil {
		cb.RecordSuccess()
	} else if !isCancellation(err) {
		cb.RecordFailure()
	}
	return err
}

// update applies fn under the lock and reports any state change afterwards.
func (cb *CircuitBreaker) update(fn func()) CircuitBreakerState {
	cb.mu.Lock()
	from := cb.state
	fn()
	to := cb.state
	cb.mu.Unlock()

	if from != to && cb.OnStateChange != nil {
		cb.OnStateChange(from, to)
	}
	return to
}

// moveTo switches state and clears the counters the new state starts from.
func (cb *CircuitBreaker) moveTo(state CircuitBreakerState) {
	cb.state = state
	cb.probes = 0
	if state == StateClosed {
		cb.failures = 0
	}
}

// IsOpen reports whether calls are currently refused. An open breaker whose
// reset timeout has elapsed moves to half-open here.
func (cb *CircuitBreaker) IsOpen() bool {
	state := cb.update(func() {
		if cb.state == StateOpen && cb.now().Sub(cb.lastFailure) > cb.config.ResetTimeout {
			cb.moveTo(StateHalfOpen)
		}
	})
	return state == StateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.update(func() {
		switch cb.state {
		case StateClosed:
			cb.failures = 0
		case StateHalfOpen:
			cb.probes++
			if cb.probes >= cb.config.HalfOpenSuccesses {
				cb.moveTo(StateClosed)
			}
		}
	})
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.update(func() {
		cb.lastFailure = cb.now()
		switch cb.state {
		case StateClosed:
			cb.failures++
			if cb.failures >= cb.config.MaxFailures {
				cb.moveTo(StateOpen)
			}
		case StateHalfOpen:
			cb.moveTo(StateOpen)
		}
	})
}

func (cb *CircuitBreaker) GetState() CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// Reset closes the breaker and forgets past failures
func (cb *CircuitBreaker) Reset() {
	cb.update(func() {
		cb.moveTo(StateClosed)
	})
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
