package domain

import "time"

// ResourceStats aggregates all activity of one resource (a user or a
// channel; the two id spaces never overlap). The identity is fixed at
// construction.
type ResourceStats struct {
	ID string

	// Hourly buckets activity by hour of day, keys "00".."23".
	Hourly CounterMap
	// Messages counts messages keyed by the counterpart resource:
	// channel ids on a user's stats, user ids on a channel's stats.
	Messages CounterMap
	// Thread activity split by whether this resource started the thread.
	ThreadsAuthored    CounterMap
	ThreadsContributed CounterMap
	// Reaction activity keyed by emoji, split by direction.
	ReactionsGiven    CounterMap
	ReactionsReceived CounterMap

	FirstAt time.Time
	LastAt  time.Time
}

func NewResourceStats(id string) *ResourceStats {
	return &ResourceStats{
		ID:                 id,
		Hourly:             NewCounterMap(),
		Messages:           NewCounterMap(),
		ThreadsAuthored:    NewCounterMap(),
		ThreadsContributed: NewCounterMap(),
		ReactionsGiven:     NewCounterMap(),
		ReactionsReceived:  NewCounterMap(),
	}
}

// Register applies one interaction event to this resource's counters.
// counterpartID is the other resource involved: the channel id when this
// is a user's stats, the user id when this is a channel's. The caller has
// already decided that this resource receives the registration.
func (s *ResourceStats) Register(e Event, counterpartID string) error {
	s.Hourly.Bump(HourKey(e.Timestamp), e.Timestamp)
	if s.FirstAt.IsZero() {
		s.FirstAt = e.Timestamp
	}
	s.LastAt = e.Timestamp

	switch e.Kind {
	case KindMessage:
		s.Messages.Bump(counterpartID, e.Timestamp)
	case KindThread:
		if s.ID == e.ThreadAuthorID {
			s.ThreadsAuthored.Bump(e.ThreadID, e.Timestamp)
		} else {
			s.ThreadsContributed.Bump(e.ThreadID, e.Timestamp)
		}
	case KindReaction:
		// The acting user records the reaction as given, everyone else
		// (the item owner, the channel) as received. A self-reaction
		// registers once, as given.
		if s.ID == e.UserID {
			s.ReactionsGiven.Bump(e.Emoji, e.Timestamp)
		} else {
			s.ReactionsReceived.Bump(e.Emoji, e.Timestamp)
		}
	default:
		return unknownKind(e.Kind)
	}

	return nil
}
