// Package snapshot is the codec between the live AggregationStore and
// its persisted JSON document. Every entity has an explicit DTO; nothing
// relies on generic copying, so timestamps and nested maps keep their
// types across a round-trip.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"chat-activity-service/internal/activity/core/domain"
	"chat-activity-service/internal/activity/core/ports"
)

// formatVersion guards against decoding documents written by an
// incompatible build.
const formatVersion = 1

type Codec struct{}

func NewCodec() *Codec {
	return &Codec{}
}

var _ ports.SnapshotCodecPort = (*Codec)(nil)

type document struct {
	Version         int                             `json:"version"`
	SnapshotID      string                          `json:"snapshot_id"`
	StoreKey        string                          `json:"store_key"`
	TakenAt         time.Time                       `json:"taken_at"`
	Directory       directoryDTO                    `json:"directory"`
	AllTimeUsers    map[string]resourceStatsDTO     `json:"all_time_users"`
	AllTimeChannels map[string]resourceStatsDTO     `json:"all_time_channels"`
	Days            map[string]dayBucketDTO         `json:"days"`
	ChannelTouch    map[string]map[string]time.Time `json:"channel_last_touch"`
}

type directoryDTO struct {
	Users        map[string]string    `json:"users"`
	Channels     map[string]string    `json:"channels"`
	LastActivity map[string]time.Time `json:"last_activity"`
}

type counterDTO struct {
	Total   int64     `json:"total"`
	FirstAt time.Time `json:"first_at"`
	LastAt  time.Time `json:"last_at"`
}

type resourceStatsDTO struct {
	ID                 string                `json:"id"`
	Hourly             map[string]counterDTO `json:"hourly"`
	Messages           map[string]counterDTO `json:"messages"`
	ThreadsAuthored    map[string]counterDTO `json:"threads_authored"`
	ThreadsContributed map[string]counterDTO `json:"threads_contributed"`
	ReactionsGiven     map[string]counterDTO `json:"reactions_given"`
	ReactionsReceived  map[string]counterDTO `json:"reactions_received"`
	FirstAt            time.Time             `json:"first_at"`
	LastAt             time.Time             `json:"last_at"`
}

type dayBucketDTO struct {
	Day      string                      `json:"day"`
	Users    map[string]resourceStatsDTO `json:"users"`
	Channels map[string]resourceStatsDTO `json:"channels"`
}

func (c *Codec) Encode(store *domain.AggregationStore) ([]byte, error) {
	doc := document{
		Version:    formatVersion,
		SnapshotID: uuid.NewString(),
		StoreKey:   store.Key,
		TakenAt:    time.Now().UTC(),
		Directory: directoryDTO{
			Users:        copyStringMap(store.Directory.Users),
			Channels:     copyStringMap(store.Directory.Channels),
			LastActivity: copyTimeMap(store.Directory.LastActivity),
		},
		AllTimeUsers:    encodeStatsMap(store.AllTimeUsers),
		AllTimeChannels: encodeStatsMap(store.AllTimeChannels),
		Days:            make(map[string]dayBucketDTO, len(store.Days)),
		ChannelTouch:    make(map[string]map[string]time.Time, len(store.ChannelLastTouch)),
	}

	for day, bucket := range store.Days {
		doc.Days[day] = dayBucketDTO{
			Day:      bucket.Day,
			Users:    encodeStatsMap(bucket.Users),
			Channels: encodeStatsMap(bucket.Channels),
		}
	}
	for channelID, touch := range store.ChannelLastTouch {
		doc.ChannelTouch[channelID] = copyTimeMap(touch)
	}

	return json.Marshal(doc)
}

func (c *Codec) Decode(raw []byte) (*domain.AggregationStore, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrSnapshotCorrupt, err)
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("%w: unsupported format version %d", ports.ErrSnapshotCorrupt, doc.Version)
	}
	if doc.StoreKey == "" {
		return nil, fmt.Errorf("%w: missing store key", ports.ErrSnapshotCorrupt)
	}

	store := domain.NewAggregationStore(doc.StoreKey)

	for id, name := range doc.Directory.Users {
		store.Directory.Users[id] = name
	}
	for id, name := range doc.Directory.Channels {
		store.Directory.Channels[id] = name
	}
	for id, ts := range doc.Directory.LastActivity {
		store.Directory.LastActivity[id] = ts
	}

	decodeStatsMap(doc.AllTimeUsers, store.AllTimeUsers)
	decodeStatsMap(doc.AllTimeChannels, store.AllTimeChannels)

	for day, dto := range doc.Days {
		bucket := domain.NewDayBucket(dto.Day)
		if bucket.Day == "" {
			bucket.Day = day
		}
		decodeStatsMap(dto.Users, bucket.Users)
		decodeStatsMap(dto.Channels, bucket.Channels)
		store.Days[day] = bucket
	}

	for channelID, touch := range doc.ChannelTouch {
		store.ChannelLastTouch[channelID] = copyTimeMap(touch)
	}

	return store, nil
}

func encodeStatsMap(src map[string]*domain.ResourceStats) map[string]resourceStatsDTO {
	out := make(map[string]resourceStatsDTO, len(src))
	for id, stats := range src {
		out[id] = resourceStatsDTO{
			ID:                 stats.ID,
			Hourly:             encodeCounterMap(stats.Hourly),
			Messages:           encodeCounterMap(stats.Messages),
			ThreadsAuthored:    encodeCounterMap(stats.ThreadsAuthored),
			ThreadsContributed: encodeCounterMap(stats.ThreadsContributed),
			ReactionsGiven:     encodeCounterMap(stats.ReactionsGiven),
			ReactionsReceived:  encodeCounterMap(stats.ReactionsReceived),
			FirstAt:            stats.FirstAt,
			LastAt:             stats.LastAt,
		}
	}
	return out
}

func decodeStatsMap(src map[string]resourceStatsDTO, dst map[string]*domain.ResourceStats) {
	for id, dto := range src {
		stats := domain.NewResourceStats(dto.ID)
		if stats.ID == "" {
			stats.ID = id
		}
		decodeCounterMap(dto.Hourly, stats.Hourly)
		decodeCounterMap(dto.Messages, stats.Messages)
		decodeCounterMap(dto.ThreadsAuthored, stats.ThreadsAuthored)
		decodeCounterMap(dto.ThreadsContributed, stats.ThreadsContributed)
		decodeCounterMap(dto.ReactionsGiven, stats.ReactionsGiven)
		decodeCounterMap(dto.ReactionsReceived, stats.ReactionsReceived)
		stats.FirstAt = dto.FirstAt
		stats.LastAt = dto.LastAt
		dst[id] = stats
	}
}

func encodeCounterMap(src domain.CounterMap) map[string]counterDTO {
	out := make(map[string]counterDTO, len(src))
	for key, c := range src {
		out[key] = counterDTO{Total: c.Total, FirstAt: c.FirstAt, LastAt: c.LastAt}
	}
	return out
}

func decodeCounterMap(src map[string]counterDTO, dst domain.CounterMap) {
	for key, dto := range src {
		dst[key] = &domain.Counter{Total: dto.Total, FirstAt: dto.FirstAt, LastAt: dto.LastAt}
	}
}

func copyStringMap(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func copyTimeMap(src map[string]time.Time) map[string]time.Time {
	out := make(map[string]time.Time, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
