package engine

import (
	"sync"
	"time"
)

// Clock is the time source for frame and timer scheduling
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall time with a monotonic component
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to, for deterministic timer tests
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock starts a manual clock at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set jumps the clock to t
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Advance moves the clock forward by d and returns the new reading
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}
