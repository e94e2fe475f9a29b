package domain

import "time"

// Scope selects which identity space a query targets.
type Scope string

const (
	ScopeUser    Scope = "user"
	ScopeChannel Scope = "channel"
)

// CounterView is a read-only copy of one counter, detached from the live
// store.
type CounterView struct {
	Key     string
	Total   int64
	FirstAt time.Time
	LastAt  time.Time
}

// DayView is one calendar day of a resource's activity, materialized for
// querying. Absent days come back as zero views, indistinguishable from
// a day with no registrations.
type DayView struct {
	Day string // "YYYY-MM-DD"

	// Hourly totals indexed by bucket number 0..23.
	Hourly [24]int64

	// Interactions is the day's activity sum used for heatmaps:
	// messages + reactions (both directions) + thread contributions.
	Interactions int64

	Counterparts       []CounterView
	ThreadsAuthored    []CounterView
	ThreadsContributed []CounterView
	ReactionsGiven     []CounterView
	ReactionsReceived  []CounterView
}

// AllTimeView is the never-resetting aggregate of one resource.
type AllTimeView struct {
	Hourly [24]int64

	Counterparts       []CounterView
	ThreadsAuthored    []CounterView
	ThreadsContributed []CounterView
	ReactionsGiven     []CounterView
	ReactionsReceived  []CounterView

	// ActiveDays counts the calendar days the resource appears in.
	ActiveDays int

	FirstAt time.Time
	LastAt  time.Time
}

// ResourceWindow is everything a derivation needs about one resource
// over one inclusive day range.
type ResourceWindow struct {
	Scope Scope
	ID    string
	Name  string

	// Days holds exactly one view per day in [from, to], in order.
	// Empty when from is after to.
	Days []DayView

	AllTime AllTimeView

	// CounterpartNames resolves every counterpart id seen in Days or
	// AllTime to its directory display name (the id itself when the
	// directory has no entry).
	CounterpartNames map[string]string
}

type HeatmapCell struct {
	Day     string
	Opacity float64
}

type HourlyShare struct {
	Hour    string // "00".."23"
	Percent float64
}

type RankingEntry struct {
	ID     string
	Name   string
	Total  int64
	LastAt time.Time
}

// SummaryRow pairs one named metric's value inside the queried range
// with its all-time value. Values are floats so empty populations can
// carry NaN through to the presentation boundary.
type SummaryRow struct {
	Description string
	InRange     float64
	AllTime     float64
}

// MinMaxPair holds reductions over a counter population. Empty
// populations yield ±Inf totals and zero times; callers guard before
// display.
type MinMaxPair struct {
	MinTotal  float64
	MaxTotal  float64
	MinLastAt time.Time
	MaxLastAt time.Time
}

type ActiveUser struct {
	UserID string
	Name   string
	LastAt time.Time
}
