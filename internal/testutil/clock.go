package testutil

import (
	"sync"
	"time"
)

// StepClock is a deterministic wall clock for tests.
//
// Every call to Now returns the previous reading plus a fixed step, so two
// consecutive readings always differ by exactly that step. Durations reported
// through timing.Measure are therefore reproducible byte for byte.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type StepClock struct {
	mu       sync.Mutex
	origin   time.Time
	step     time.Duration
	readings int64
}

// NewStepClock creates a clock anchored at the Unix epoch that advances by
// step on every reading.
func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{origin: time.Unix(0, 0).UTC(), step: step}
}

// Now returns the next reading.
//
// The first call returns origin+step.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readings++
	return c.origin.Add(time.Duration(c.readings) * c.step)
}

// Readings returns how many times Now has been called.
func (c *StepClock) Readings() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readings
}

// Reset rewinds the clock to its origin.
func (c *StepClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.readings = 0
}
