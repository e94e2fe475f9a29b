package domain

import (
	"testing"
	"time"
)

// ------------------------------------------------------------
// FIRST INCREMENT SETS BOTH TIMESTAMPS
// ------------------------------------------------------------

func TestCounter_FirstIncrement(t *testing.T) {
	at := time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)

	var c Counter
	c.Increment(1, at)

	if c.Total != 1 {
		t.Fatalf("expected total=1, got %d", c.Total)
	}
	if !c.FirstAt.Equal(at) {
		t.Fatalf("expected firstAt=%v, got %v", at, c.FirstAt)
	}
	if !c.LastAt.Equal(at) {
		t.Fatalf("expected lastAt=%v, got %v", at, c.LastAt)
	}
}

// ------------------------------------------------------------
// FIRST TOUCH IS SET ONLY ONCE
// ------------------------------------------------------------

func TestCounter_FirstAtSetOnce(t *testing.T) {
	first := time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	var c Counter
	c.Increment(1, first)
	c.Increment(2, later)

	if c.Total != 3 {
		t.Fatalf("expected total=3, got %d", c.Total)
	}
	if !c.FirstAt.Equal(first) {
		t.Fatalf("firstAt must not move, got %v", c.FirstAt)
	}
	if !c.LastAt.Equal(later) {
		t.Fatalf("expected lastAt=%v, got %v", later, c.LastAt)
	}
}

// ------------------------------------------------------------
// LAST TOUCH IS LAST-WRITE-WINS, NOT MAX-TIMESTAMP
// ------------------------------------------------------------

func TestCounter_LastAtFollowsRegistrationOrder(t *testing.T) {
	newer := time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)

	var c Counter
	c.Increment(1, newer)
	c.Increment(1, older)

	if !c.LastAt.Equal(older) {
		t.Fatalf("expected lastAt=%v (last registered), got %v", older, c.LastAt)
	}
	if !c.FirstAt.Equal(newer) {
		t.Fatalf("expected firstAt=%v (first registered), got %v", newer, c.FirstAt)
	}
}

// ------------------------------------------------------------
// COUNTER MAP GET-OR-CREATE AND SUM
// ------------------------------------------------------------

func TestCounterMap_BumpAndSum(t *testing.T) {
	at := time.Date(2021, 3, 4, 5, 0, 0, 0, time.UTC)

	m := NewCounterMap()
	m.Bump("a", at)
	m.Bump("a", at.Add(time.Minute))
	m.Bump("b", at)

	if len(m) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(m))
	}
	if m["a"].Total != 2 {
		t.Fatalf("expected a=2, got %d", m["a"].Total)
	}
	if m["b"].Total != 1 {
		t.Fatalf("expected b=1, got %d", m["b"].Total)
	}
	if m.Sum() != 3 {
		t.Fatalf("expected sum=3, got %d", m.Sum())
	}
}
