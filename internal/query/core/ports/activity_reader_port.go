package ports

import (
	"context"
	"time"

	"chat-activity-service/internal/query/core/domain"
)

// ActivityReaderPort materializes read-only projections of the live
// aggregation store. Implementations must never mutate the store:
// missing days or resources are synthesized as empty views, not
// inserted.
type ActivityReaderPort interface {
	// ResourceWindow returns one DayView per calendar day in
	// [from, to] inclusive (empty when from is after to) plus the
	// resource's all-time projection.
	ResourceWindow(ctx context.Context, scope domain.Scope, id string, from, to time.Time) (*domain.ResourceWindow, error)

	// ActiveInChannel lists users from the channel's last-touch index,
	// unordered; derivations sort and filter.
	ActiveInChannel(ctx context.Context, channelID string) ([]domain.ActiveUser, error)
}
