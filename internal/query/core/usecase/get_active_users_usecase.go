package usecase

import (
	"context"
	"sort"
	"time"

	"chat-activity-service/internal/query/core/domain"
	"chat-activity-service/internal/query/core/ports"
)

type GetActiveUsersInput struct {
	ChannelID string
	// Window filters to users touched within Now-Window; zero means no
	// filter (everyone ever seen in the channel).
	Window time.Duration
	Now    time.Time
}

// GetActiveUsersUseCase answers "who is active in this channel right
// now" from the store's last-touch index.
type GetActiveUsersUseCase struct {
	reader ports.ActivityReaderPort
}

func NewGetActiveUsersUseCase(reader ports.ActivityReaderPort) *GetActiveUsersUseCase {
	return &GetActiveUsersUseCase{reader: reader}
}

func (uc *GetActiveUsersUseCase) Execute(ctx context.Context, in GetActiveUsersInput) ([]domain.ActiveUser, error) {
	if in.ChannelID == "" {
		return nil, ErrInvalidResource
	}

	users, err := uc.reader.ActiveInChannel(ctx, in.ChannelID)
	if err != nil {
		return nil, err
	}

	if in.Window > 0 {
		now := in.Now
		if now.IsZero() {
			now = time.Now().UTC()
		}
		cutoff := now.Add(-in.Window)

		filtered := users[:0]
		for _, u := range users {
			if !u.LastAt.Before(cutoff) {
				filtered = append(filtered, u)
			}
		}
		users = filtered
	}

	sort.SliceStable(users, func(i, j int) bool {
		return users[i].LastAt.After(users[j].LastAt)
	})

	return users, nil
}
