package fio

import (
	"errors"
	"sync"
	"time"
)

// CircuitState represents the state of the circuit breaker
type CircuitState int

const (
	// CircuitClosed lets requests through to FIO
	CircuitClosed CircuitState = iota
	// CircuitOpen fails requests without calling FIO
	CircuitOpen
	// CircuitHalfOpen lets one probe through to test recovery
	CircuitHalfOpen
)

// ErrCircuitOpen is returned while FIO is considered unavailable
var ErrCircuitOpen = errors.New("circuit breaker open")

// CircuitBreaker stops calling FIO after repeated failures so a cost run
// fails fast instead of retrying every quote.
type CircuitBreaker struct {
	maxFailures     int
	timeout         time.Duration
	state           CircuitState
	failureCount    int
	lastFailureTime time.Time
	mu              sync.Mutex
	now             func() time.Time
}

// NewCircuitBreaker creates a breaker opening after maxFailures consecutive
// failures and probing again after timeout. now defaults to time.Now.
func NewCircuitBreaker(maxFailures int, timeout time.Duration, now func() time.Time) *CircuitBreaker {
	if now == nil {
		now = time.Now
	}
	return &CircuitBreaker{
		maxFailures: maxFailures,
		timeout:     timeout,
		state:       CircuitClosed,
		now:         now,
	}
}

// Call executes fn unless the circuit is open
func (cb *CircuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	if cb.state == CircuitOpen {
		if cb.now().Sub(cb.lastFailureTime) < cb.timeout {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.state = CircuitHalfOpen
	}
	cb.mu.Unlock()

	// fn runs unlocked; it may block on retries
	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil {
		cb.failureCount++
		cb.lastFailureTime = cb.now()
		if cb.state == CircuitHalfOpen || cb.failureCount >= cb.maxFailures {
			cb.state = CircuitOpen
		}
		return err
	}

	cb.failureCount = 0
	cb.state = CircuitClosed
	return nil
}

// State returns the current circuit state
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
