package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"chat-activity-service/internal/activity/core/domain"
)

var (
	ErrInvalidEvent = errors.New("invalid event")
	ErrFutureTime   = errors.New("timestamp cannot be in the future")
)

// RegisterEventUseCase turns listener payloads into domain events and
// applies them to the store. The mutex is shared with the snapshot
// usecase so persistence never observes a half-applied event.
type RegisterEventUseCase struct {
	mu    *sync.RWMutex
	store *domain.AggregationStore
}

func NewRegisterEventUseCase(mu *sync.RWMutex, store *domain.AggregationStore) *RegisterEventUseCase {
	return &RegisterEventUseCase{mu: mu, store: store}
}

type RegisterEventInput struct {
	Type           string
	ChannelID      string
	UserID         string
	Emoji          string
	ItemUserID     string
	ThreadID       string
	ThreadAuthorID string
	DisplayName    string
	Remove         bool
	Timestamp      int64 // unix seconds
}

func (uc *RegisterEventUseCase) Execute(ctx context.Context, in RegisterEventInput) error {
	e, err := uc.buildEvent(in)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.store.Register(e)
}

type BulkRegisterEventsInput struct {
	Events []RegisterEventInput
}

type BulkRegisterEventsResult struct {
	Accepted int
}

// BulkRegisterEvents validates the whole batch up front, then applies it
// strictly in order under one lock acquisition.
func (uc *RegisterEventUseCase) BulkRegisterEvents(ctx context.Context, in BulkRegisterEventsInput) (BulkRegisterEventsResult, error) {
	var res BulkRegisterEventsResult

	events := make([]domain.Event, len(in.Events))
	for i, raw := range in.Events {
		e, err := uc.buildEvent(raw)
		if err != nil {
			return res, err
		}
		events[i] = e
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, e := range events {
		if err := uc.store.Register(e); err != nil {
			return res, err
		}
		res.Accepted++
	}

	return res, nil
}

func (uc *RegisterEventUseCase) buildEvent(in RegisterEventInput) (domain.Event, error) {
	if err := validateInput(in); err != nil {
		return domain.Event{}, err
	}

	return domain.Event{
		Kind:           domain.EventKind(in.Type),
		ChannelID:      in.ChannelID,
		UserID:         in.UserID,
		Emoji:          in.Emoji,
		ItemUserID:     in.ItemUserID,
		ThreadID:       in.ThreadID,
		ThreadAuthorID: in.ThreadAuthorID,
		DisplayName:    in.DisplayName,
		Remove:         in.Remove,
		Timestamp:      time.Unix(in.Timestamp, 0).UTC(),
	}, nil
}

func validateInput(in RegisterEventInput) error {
	if in.Timestamp <= 0 {
		return ErrInvalidEvent
	}

	now := time.Now().Unix()
	if in.Timestamp > now {
		return ErrFutureTime
	}

	switch domain.EventKind(in.Type) {
	case domain.KindMessage:
		if in.ChannelID == "" || in.UserID == "" {
			return ErrInvalidEvent
		}
	case domain.KindThread:
		if in.ChannelID == "" || in.UserID == "" || in.ThreadID == "" {
			return ErrInvalidEvent
		}
	case domain.KindReaction:
		if in.ChannelID == "" || in.UserID == "" || in.Emoji == "" {
			return ErrInvalidEvent
		}
	case domain.KindUser:
		if in.UserID == "" || (!in.Remove && in.DisplayName == "") {
			return ErrInvalidEvent
		}
	case domain.KindChannel:
		if in.ChannelID == "" || (!in.Remove && in.DisplayName == "") {
			return ErrInvalidEvent
		}
	default:
		// Let the domain produce its sentinel so callers can tell a
		// taxonomy violation apart from a bad payload.
		return nil
	}

	return nil
}
