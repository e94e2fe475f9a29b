package usecase

import (
	"errors"
	"math"

	"chat-activity-service/internal/query/core/domain"
)

var (
	ErrInvalidScope    = errors.New("invalid scope")
	ErrInvalidResource = errors.New("resource id is required")
	ErrInvalidLimit    = errors.New("limit must be positive")
)

func validScope(s domain.Scope) bool {
	return s == domain.ScopeUser || s == domain.ScopeChannel
}

// Normalize rescales x from [min, max] onto [newMin, newMax], clamping x
// into the source interval first. A degenerate source interval
// (max == min) maps everything to newMin.
func Normalize(x, min, max, newMin, newMax float64) float64 {
	if max == min {
		return newMin
	}
	if x < min {
		x = min
	}
	if x > max {
		x = max
	}
	return (x-min)/(max-min)*(newMax-newMin) + newMin
}

// MinMax reduces a counter population to its total and last-touch
// extremes. An empty population yields ±Inf totals and zero times, the
// sentinels callers must guard before display.
func MinMax(counters []domain.CounterView) domain.MinMaxPair {
	pair := domain.MinMaxPair{
		MinTotal: math.Inf(1),
		MaxTotal: math.Inf(-1),
	}

	for _, c := range counters {
		total := float64(c.Total)
		if total < pair.MinTotal {
			pair.MinTotal = total
		}
		if total > pair.MaxTotal {
			pair.MaxTotal = total
		}
		if pair.MinLastAt.IsZero() || c.LastAt.Before(pair.MinLastAt) {
			pair.MinLastAt = c.LastAt
		}
		if c.LastAt.After(pair.MaxLastAt) {
			pair.MaxLastAt = c.LastAt
		}
	}

	return pair
}
