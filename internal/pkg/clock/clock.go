package clock

import (
	"sync"
	"time"
)

// Clock is the source of "now" for everything outside the pricing engines.
// The engines never read it; callers pass the instant in explicitly.
type Clock interface {
	Now() time.Time
}

// RealClock reports the system time, optionally pinned to a location.
type RealClock struct {
	loc *time.Location
}

// NewRealClock creates a RealClock in the local time zone.
func NewRealClock() Clock {
	return &RealClock{loc: time.Local}
}

// NewRealClockIn creates a RealClock that reports times in loc.
func NewRealClockIn(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return &RealClock{loc: loc}
}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// MockClock is a settable clock for tests. Safe for concurrent use.
type MockClock struct {
	mu      sync.RWMutex
	current time.Time
}

// NewMockClock creates a MockClock starting at the given time.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{current: startTime}
}

// Now returns the mock current time.
func (m *MockClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Set sets the mock current time.
func (m *MockClock) Set(t time.Time) {
	m.mu.Lock()
	m.current = t
	m.mu.Unlock()
}

// Advance advances the mock clock by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	m.current = m.current.Add(d)
	m.mu.Unlock()
}

// StartOfDay truncates t to midnight in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
