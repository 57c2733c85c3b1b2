// The ratelimit package implements per-source sliding-window throttling.
// Two instances exist in the application: one counting login failures and
// one counting comment submissions, each with its own policy. State lives in
// process memory; when several instances of the service run, each enforces
// its thresholds independently.
package ratelimit

import (
	"sync"
	"time"

	"codeberg.org/gruf/go-mutexes"
)

// Policy is the threshold applied to every source: at most Max events within
// the trailing Window.
type Policy struct {
	Max    int
	Window time.Duration
}

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Decision is the outcome of a limiter check. RetryAfter is only meaningful
// when Allowed is false: it is the time until the oldest counted event ages
// out of the window.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Limiter keeps one window of event timestamps per source address. Windows
// are pruned lazily on every access, so entries never outlive the policy
// window at the point they are read, and emptied windows are dropped from
// the map rather than swept by a background task.
type Limiter struct {
	policy Policy
	clock  Clock

	locks *mutexes.MutexMap

	mu      sync.Mutex
	windows map[string][]time.Time
}

func New(policy Policy, clock Clock) *Limiter {
	return &Limiter{
		policy:  policy,
		clock:   clock,
		locks:   &mutexes.MutexMap{},
		windows: make(map[string][]time.Time),
	}
}

// Lock takes the per-source critical section and returns its release
// function. Callers that split a decision across Check and Record (the login
// flow checks, then verifies the password, then records the outcome) hold
// this lock for the whole sequence so two concurrent attempts from the same
// source cannot both slip under the threshold.
func (l *Limiter) Lock(source string) (unlock func()) {
	return l.locks.Lock(source)
}

// Check prunes the source's window and reports whether another event is
// allowed. It records nothing.
func (l *Limiter) Check(source string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	window := l.prune(source, now)
	return l.decide(window, now)
}

// Record appends the current instant to the source's window. The login flow
// calls it only for failed verifications, and it counts past the threshold:
// extra failures while already blocked keep the block honest.
func (l *Limiter) Record(source string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.windows[source] = append(l.prune(source, now), now)
}

// CheckAndRecord checks and, when allowed, records in one atomic step. The
// comment pipeline uses it because there every allowed request counts; a
// blocked request is not recorded.
func (l *Limiter) CheckAndRecord(source string) Decision {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	window := l.prune(source, now)
	d := l.decide(window, now)
	if d.Allowed {
		l.windows[source] = append(window, now)
	}
	return d
}

// Clear discards the source's window entirely, used on successful login.
func (l *Limiter) Clear(source string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.windows, source)
}

// prune drops entries that left the trailing window and returns what
// remains. Must be called with l.mu held. Entries are appended in clock
// order, so the slice stays sorted and only the head is ever trimmed.
func (l *Limiter) prune(source string, now time.Time) []time.Time {
	window := l.windows[source]
	cutoff := now.Add(-l.policy.Window)

	i := 0
	for i < len(window) && !window[i].After(cutoff) {
		i++
	}
	window = window[i:]

	if len(window) == 0 {
		delete(l.windows, source)
	} else {
		l.windows[source] = window
	}
	return window
}

func (l *Limiter) decide(window []time.Time, now time.Time) Decision {
	if len(window) < l.policy.Max {
		return Decision{Allowed: true}
	}
	// A policy with Max <= 0 blocks everything; there is no entry whose
	// expiry would reopen the window.
	if len(window) == 0 {
		return Decision{RetryAfter: l.policy.Window}
	}
	return Decision{
		RetryAfter: window[0].Add(l.policy.Window).Sub(now),
	}
}
