package cooldown

import (
	"sync"
	"time"
)

// Clock lets tests drive the ledger deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func NewRealClock() Clock { return realClock{} }

// Ledger is the process-local deduplication backstop: a lock-guarded,
// time-indexed map from repository key to the last accepted provision
// time. It is intentionally not durable; duplicate deliveries across
// process restarts are absorbed only by the admission checks further
// down the pipeline.
type Ledger struct {
	mu      sync.Mutex
	entries map[string]time.Time
	window  time.Duration
	horizon time.Duration
	clock   Clock
}

func NewLedger(window, horizon time.Duration, clock Clock) *Ledger {
	if clock == nil {
		clock = realClock{}
	}

	return &Ledger{
		entries: make(map[string]time.Time),
		window:  window,
		horizon: horizon,
		clock:   clock,
	}
}

// Active reports whether key was accepted within the cooldown window.
func (l *Ledger) Active(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.prune(now)

	at, ok := l.entries[key]
	return ok && now.Sub(at) < l.window
}

// TryAcquire is the commit point of an admission decision. It
// re-checks the window and records the acceptance in one critical
// section, so two near-simultaneous deliveries for the same key cannot
// both acquire.
func (l *Ledger) TryAcquire(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.prune(now)

	if at, ok := l.entries[key]; ok && now.Sub(at) < l.window {
		return false
	}

	l.entries[key] = now
	return true
}

// prune drops entries older than the horizon. Caller holds the lock.
func (l *Ledger) prune(now time.Time) {
	for k, at := range l.entries {
		if now.Sub(at) >= l.horizon {
			delete(l.entries, k)
		}
	}
}

// Len is used by tests to observe pruning.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
