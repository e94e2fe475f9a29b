package usecase

import (
	"context"
	"time"

	"chat-activity-service/internal/query/core/domain"
)

type windowCall struct {
	scope    domain.Scope
	id       string
	from, to time.Time
}

// Fake reader implementing ActivityReaderPort.
type fakeReader struct {
	WindowFn func(ctx context.Context, scope domain.Scope, id string, from, to time.Time) (*domain.ResourceWindow, error)
	ActiveFn func(ctx context.Context, channelID string) ([]domain.ActiveUser, error)
	calls    []windowCall
}

func (f *fakeReader) ResourceWindow(ctx context.Context, scope domain.Scope, id string, from, to time.Time) (*domain.ResourceWindow, error) {
	f.calls = append(f.calls, windowCall{scope: scope, id: id, from: from, to: to})
	if f.WindowFn != nil {
		return f.WindowFn(ctx, scope, id, from, to)
	}
	return &domain.ResourceWindow{Scope: scope, ID: id}, nil
}

func (f *fakeReader) ActiveInChannel(ctx context.Context, channelID string) ([]domain.ActiveUser, error) {
	if f.ActiveFn != nil {
		return f.ActiveFn(ctx, channelID)
	}
	return nil, nil
}

func day(key string, interactions int64) domain.DayView {
	return domain.DayView{Day: key, Interactions: interactions}
}
