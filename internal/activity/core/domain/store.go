package domain

import "time"

// AggregationStore is the root aggregate: the directory, the all-time
// stats per resource, every day bucket ever touched, and the
// channel→user last-touch index. One instance per deployment; Key is its
// persistence identity. All nested maps are exclusively owned by the
// store — readers get copies or read-only views, never aliases they may
// mutate.
type AggregationStore struct {
	Key string

	Directory       *ResourceDirectory
	AllTimeUsers    map[string]*ResourceStats
	AllTimeChannels map[string]*ResourceStats
	Days            map[string]*DayBucket

	// ChannelLastTouch answers "who is active in this channel right
	// now": channel id → user id → last registered interaction time.
	ChannelLastTouch map[string]map[string]time.Time
}

func NewAggregationStore(key string) *AggregationStore {
	return &AggregationStore{
		Key:              key,
		Directory:        NewResourceDirectory(),
		AllTimeUsers:     make(map[string]*ResourceStats),
		AllTimeChannels:  make(map[string]*ResourceStats),
		Days:             make(map[string]*DayBucket),
		ChannelLastTouch: make(map[string]map[string]time.Time),
	}
}

// Register applies one event. Interaction events fan out to the day
// bucket, the all-time stats and the touch indices; lifecycle events go
// to the directory only. Events are applied strictly in arrival order by
// a single writer.
func (s *AggregationStore) Register(e Event) error {
	switch e.Kind {
	case KindMessage, KindThread, KindReaction:
		return s.registerInteraction(e)
	case KindUser:
		if e.Remove {
			s.Directory.RemoveUser(e.UserID)
		} else {
			s.Directory.AddUser(e.UserID, e.DisplayName, e.Timestamp)
		}
		return nil
	case KindChannel:
		if e.Remove {
			s.Directory.RemoveChannel(e.ChannelID)
		} else {
			s.Directory.AddChannel(e.ChannelID, e.DisplayName, e.Timestamp)
		}
		return nil
	default:
		return unknownKind(e.Kind)
	}
}

func (s *AggregationStore) registerInteraction(e Event) error {
	touch, ok := s.ChannelLastTouch[e.ChannelID]
	if !ok {
		touch = make(map[string]time.Time)
		s.ChannelLastTouch[e.ChannelID] = touch
	}
	touch[e.UserID] = e.Timestamp

	day, ok := s.Days[DayKey(e.Timestamp)]
	if !ok {
		day = NewDayBucket(DayKey(e.Timestamp))
		s.Days[day.Day] = day
	}
	if err := day.Register(e); err != nil {
		return err
	}

	if err := s.allTimeUser(e.UserID).Register(e, e.ChannelID); err != nil {
		return err
	}
	if err := s.allTimeChannel(e.ChannelID).Register(e, e.UserID); err != nil {
		return err
	}

	s.Directory.Touch(e.UserID, e.Timestamp)
	s.Directory.Touch(e.ChannelID, e.Timestamp)

	// Bidirectional reaction fan-out at the all-time tier, mirroring the
	// day bucket: the item owner's counters record the received side.
	if e.Kind == KindReaction && e.ItemUserID != "" && e.ItemUserID != e.UserID {
		if err := s.allTimeUser(e.ItemUserID).Register(e, e.ChannelID); err != nil {
			return err
		}
		s.Directory.Touch(e.ItemUserID, e.Timestamp)
	}

	return nil
}

func (s *AggregationStore) allTimeUser(id string) *ResourceStats {
	st, ok := s.AllTimeUsers[id]
	if !ok {
		st = NewResourceStats(id)
		s.AllTimeUsers[id] = st
	}
	return st
}

func (s *AggregationStore) allTimeChannel(id string) *ResourceStats {
	st, ok := s.AllTimeChannels[id]
	if !ok {
		st = NewResourceStats(id)
		s.AllTimeChannels[id] = st
	}
	return st
}

// Day returns the bucket for a "YYYY-MM-DD" key. Read-only: absent days
// are reported, not created.
func (s *AggregationStore) Day(key string) (*DayBucket, bool) {
	b, ok := s.Days[key]
	return b, ok
}

func (s *AggregationStore) AllTimeUser(id string) (*ResourceStats, bool) {
	st, ok := s.AllTimeUsers[id]
	return st, ok
}

func (s *AggregationStore) AllTimeChannel(id string) (*ResourceStats, bool) {
	st, ok := s.AllTimeChannels[id]
	return st, ok
}

// ActiveInChannel copies the last-touch index for one channel so callers
// can filter and sort without holding a reference into the store.
func (s *AggregationStore) ActiveInChannel(channelID string) map[string]time.Time {
	out := make(map[string]time.Time, len(s.ChannelLastTouch[channelID]))
	for userID, ts := range s.ChannelLastTouch[channelID] {
		out[userID] = ts
	}
	return out
}
