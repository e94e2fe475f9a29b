// Package memory reads the live in-process AggregationStore. It is the
// query side's only storage adapter: every view it hands out is a fresh
// copy, and absent days or resources are synthesized as empty views
// without ever inserting into the store.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	activity "chat-activity-service/internal/activity/core/domain"
	"chat-activity-service/internal/query/core/domain"
	"chat-activity-service/internal/query/core/ports"
)

// Reader shares the ingest RWMutex so a materialization never observes
// a half-applied event.
type Reader struct {
	mu    *sync.RWMutex
	store *activity.AggregationStore
}

func NewReader(mu *sync.RWMutex, store *activity.AggregationStore) *Reader {
	return &Reader{mu: mu, store: store}
}

var _ ports.ActivityReaderPort = (*Reader)(nil)

func (r *Reader) ResourceWindow(ctx context.Context, scope domain.Scope, id string, from, to time.Time) (*domain.ResourceWindow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	window := &domain.ResourceWindow{
		Scope:            scope,
		ID:               id,
		Name:             r.resolveName(scope, id),
		CounterpartNames: make(map[string]string),
	}

	for _, day := range domain.DayRange(from, to) {
		window.Days = append(window.Days, r.dayView(scope, id, day))
	}

	window.AllTime = r.allTimeView(scope, id)

	r.resolveCounterparts(window)

	return window, nil
}

func (r *Reader) ActiveInChannel(ctx context.Context, channelID string) ([]domain.ActiveUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	touch := r.store.ActiveInChannel(channelID)

	users := make([]domain.ActiveUser, 0, len(touch))
	for userID, ts := range touch {
		users = append(users, domain.ActiveUser{
			UserID: userID,
			Name:   r.store.Directory.UserName(userID),
			LastAt: ts,
		})
	}

	return users, nil
}

func (r *Reader) dayView(scope domain.Scope, id, day string) domain.DayView {
	view := domain.DayView{Day: day}

	bucket, ok := r.store.Day(day)
	if !ok {
		return view
	}

	var stats *activity.ResourceStats
	switch scope {
	case domain.ScopeUser:
		stats = bucket.Users[id]
	case domain.ScopeChannel:
		stats = bucket.Channels[id]
	}
	if stats == nil {
		return view
	}

	view.Hourly = hourlyTotals(stats.Hourly)
	view.Counterparts = counterViews(stats.Messages)
	view.ThreadsAuthored = counterViews(stats.ThreadsAuthored)
	view.ThreadsContributed = counterViews(stats.ThreadsContributed)
	view.ReactionsGiven = counterViews(stats.ReactionsGiven)
	view.ReactionsReceived = counterViews(stats.ReactionsReceived)
	view.Interactions = stats.Messages.Sum() +
		stats.ReactionsGiven.Sum() +
		stats.ReactionsReceived.Sum() +
		stats.ThreadsContributed.Sum()

	return view
}

func (r *Reader) allTimeView(scope domain.Scope, id string) domain.AllTimeView {
	var view domain.AllTimeView

	var stats *activity.ResourceStats
	var ok bool
	switch scope {
	case domain.ScopeUser:
		stats, ok = r.store.AllTimeUser(id)
	case domain.ScopeChannel:
		stats, ok = r.store.AllTimeChannel(id)
	}
	if !ok {
		return view
	}

	view.Hourly = hourlyTotals(stats.Hourly)
	view.Counterparts = counterViews(stats.Messages)
	view.ThreadsAuthored = counterViews(stats.ThreadsAuthored)
	view.ThreadsContributed = counterViews(stats.ThreadsContributed)
	view.ReactionsGiven = counterViews(stats.ReactionsGiven)
	view.ReactionsReceived = counterViews(stats.ReactionsReceived)
	view.FirstAt = stats.FirstAt
	view.LastAt = stats.LastAt
	view.ActiveDays = r.activeDays(scope, id)

	return view
}

func (r *Reader) activeDays(scope domain.Scope, id string) int {
	var count int
	for _, bucket := range r.store.Days {
		switch scope {
		case domain.ScopeUser:
			if _, ok := bucket.Users[id]; ok {
				count++
			}
		case domain.ScopeChannel:
			if _, ok := bucket.Channels[id]; ok {
				count++
			}
		}
	}
	return count
}

func (r *Reader) resolveName(scope domain.Scope, id string) string {
	if scope == domain.ScopeChannel {
		return r.store.Directory.ChannelName(id)
	}
	return r.store.Directory.UserName(id)
}

// resolveCounterparts names every counterpart id in the window.
// Counterparts live in the opposite identity space from the scoped
// resource.
func (r *Reader) resolveCounterparts(window *domain.ResourceWindow) {
	resolve := r.store.Directory.ChannelName
	if window.Scope == domain.ScopeChannel {
		resolve = r.store.Directory.UserName
	}

	name := func(views []domain.CounterView) {
		for _, c := range views {
			if _, ok := window.CounterpartNames[c.Key]; !ok {
				window.CounterpartNames[c.Key] = resolve(c.Key)
			}
		}
	}

	name(window.AllTime.Counterparts)
	for _, day := range window.Days {
		name(day.Counterparts)
	}
}

// counterViews copies a counter map into a slice sorted by key, the
// deterministic pre-order the stable ranking sorts rely on.
func counterViews(m activity.CounterMap) []domain.CounterView {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	views := make([]domain.CounterView, 0, len(keys))
	for _, key := range keys {
		c := m[key]
		views = append(views, domain.CounterView{
			Key:     key,
			Total:   c.Total,
			FirstAt: c.FirstAt,
			LastAt:  c.LastAt,
		})
	}
	return views
}

func hourlyTotals(m activity.CounterMap) [24]int64 {
	var totals [24]int64
	for key, c := range m {
		if len(key) == 2 {
			hour := int(key[0]-'0')*10 + int(key[1]-'0')
			if hour >= 0 && hour < 24 {
				totals[hour] = c.Total
			}
		}
	}
	return totals
}
