package testutil

import (
	"sync"
	"time"
)

// SteppingClock returns start, start+step, start+2*step, ... on successive calls.
type SteppingClock struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

func NewSteppingClock(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{next: start, step: step}
}

func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.next
	c.next = c.next.Add(c.step)
	return now
}
