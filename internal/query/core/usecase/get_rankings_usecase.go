package usecase

import (
	"context"
	"sort"
	"time"

	"chat-activity-service/internal/query/core/domain"
	"chat-activity-service/internal/query/core/ports"
)

type GetTopRankedInput struct {
	Scope domain.Scope
	ID    string
	Limit int
}

// GetTopRankedUseCase ranks a resource's counterparts by all-time
// message volume: the channels a user talks in most, or the users a
// channel hears from most.
type GetTopRankedUseCase struct {
	reader ports.ActivityReaderPort
}

func NewGetTopRankedUseCase(reader ports.ActivityReaderPort) *GetTopRankedUseCase {
	return &GetTopRankedUseCase{reader: reader}
}

func (uc *GetTopRankedUseCase) Execute(ctx context.Context, in GetTopRankedInput) ([]domain.RankingEntry, error) {
	if !validScope(in.Scope) {
		return nil, ErrInvalidScope
	}
	if in.ID == "" {
		return nil, ErrInvalidResource
	}
	if in.Limit <= 0 {
		return nil, ErrInvalidLimit
	}

	// The all-time map is range-independent; the window bounds only
	// matter for the Days views, which this ranking ignores.
	now := time.Now().UTC()
	window, err := uc.reader.ResourceWindow(ctx, in.Scope, in.ID, now, now)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.RankingEntry, 0, len(window.AllTime.Counterparts))
	for _, c := range window.AllTime.Counterparts {
		entries = append(entries, domain.RankingEntry{
			ID:     c.Key,
			Name:   window.CounterpartNames[c.Key],
			Total:  c.Total,
			LastAt: c.LastAt,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Total > entries[j].Total
	})

	return truncate(entries, in.Limit), nil
}

type GetRecentRankedInput struct {
	Scope domain.Scope
	ID    string
	From  time.Time
	To    time.Time
	Limit int
}

// GetRecentRankedUseCase ranks counterparts seen inside the range by how
// recently they were touched, most recent first, breaking ties by
// accumulated volume.
type GetRecentRankedUseCase struct {
	reader ports.ActivityReaderPort
}

func NewGetRecentRankedUseCase(reader ports.ActivityReaderPort) *GetRecentRankedUseCase {
	return &GetRecentRankedUseCase{reader: reader}
}

func (uc *GetRecentRankedUseCase) Execute(ctx context.Context, in GetRecentRankedInput) ([]domain.RankingEntry, error) {
	if !validScope(in.Scope) {
		return nil, ErrInvalidScope
	}
	if in.ID == "" {
		return nil, ErrInvalidResource
	}
	if in.Limit <= 0 {
		return nil, ErrInvalidLimit
	}

	window, err := uc.reader.ResourceWindow(ctx, in.Scope, in.ID, in.From, in.To)
	if err != nil {
		return nil, err
	}

	accumulated := make(map[string]*domain.RankingEntry)
	var order []string
	for _, day := range window.Days {
		for _, c := range day.Counterparts {
			entry, ok := accumulated[c.Key]
			if !ok {
				entry = &domain.RankingEntry{
					ID:   c.Key,
					Name: window.CounterpartNames[c.Key],
				}
				accumulated[c.Key] = entry
				order = append(order, c.Key)
			}
			entry.Total += c.Total
			if c.LastAt.After(entry.LastAt) {
				entry.LastAt = c.LastAt
			}
		}
	}

	entries := make([]domain.RankingEntry, 0, len(order))
	for _, key := range order {
		entries = append(entries, *accumulated[key])
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].LastAt.Equal(entries[j].LastAt) {
			return entries[i].LastAt.After(entries[j].LastAt)
		}
		return entries[i].Total > entries[j].Total
	})

	return truncate(entries, in.Limit), nil
}

func truncate(entries []domain.RankingEntry, limit int) []domain.RankingEntry {
	if len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
