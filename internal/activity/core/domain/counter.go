package domain

import "time"

// Counter is a running total with first-touch and last-touch timestamps.
type Counter struct {
	Total   int64
	FirstAt time.Time
	LastAt  time.Time
}

// Increment adds amount and updates the touch timestamps. FirstAt is set
// only once; LastAt is overwritten unconditionally, so registration order
// wins over timestamp order. amount must be positive; data quality is the
// caller's problem.
func (c *Counter) Increment(amount int64, at time.Time) {
	if c.FirstAt.IsZero() {
		c.FirstAt = at
	}
	c.LastAt = at
	c.Total += amount
}

// CounterMap is an owned key→Counter mapping with get-or-create semantics.
type CounterMap map[string]*Counter

func NewCounterMap() CounterMap {
	return make(CounterMap)
}

// Bump increments the counter for key by one, creating it on first touch.
func (m CounterMap) Bump(key string, at time.Time) {
	c, ok := m[key]
	if !ok {
		c = &Counter{}
		m[key] = c
	}
	c.Increment(1, at)
}

// Sum is the total across every counter in the map.
func (m CounterMap) Sum() int64 {
	var sum int64
	for _, c := range m {
		sum += c.Total
	}
	return sum
}
