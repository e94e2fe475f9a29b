package domain

// DayBucket holds one UTC calendar day's worth of per-resource stats,
// keyed independently by user id and by channel id. Buckets are created
// once per day and never deleted.
type DayBucket struct {
	Day      string // "YYYY-MM-DD"
	Users    map[string]*ResourceStats
	Channels map[string]*ResourceStats
}

func NewDayBucket(day string) *DayBucket {
	return &DayBucket{
		Day:      day,
		Users:    make(map[string]*ResourceStats),
		Channels: make(map[string]*ResourceStats),
	}
}

func (b *DayBucket) user(id string) *ResourceStats {
	s, ok := b.Users[id]
	if !ok {
		s = NewResourceStats(id)
		b.Users[id] = s
	}
	return s
}

func (b *DayBucket) channel(id string) *ResourceStats {
	s, ok := b.Channels[id]
	if !ok {
		s = NewResourceStats(id)
		b.Channels[id] = s
	}
	return s
}

// Register fans one interaction event out to the acting user's and the
// channel's stats, creating either lazily. A reaction on someone else's
// item is additionally registered against the item owner's user stats;
// that second call is what makes reaction counts bidirectional.
func (b *DayBucket) Register(e Event) error {
	if err := b.user(e.UserID).Register(e, e.ChannelID); err != nil {
		return err
	}
	if err := b.channel(e.ChannelID).Register(e, e.UserID); err != nil {
		return err
	}
	if e.Kind == KindReaction && e.ItemUserID != "" && e.ItemUserID != e.UserID {
		if err := b.user(e.ItemUserID).Register(e, e.ChannelID); err != nil {
			return err
		}
	}
	return nil
}
