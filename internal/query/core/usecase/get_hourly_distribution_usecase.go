package usecase

import (
	"context"
	"fmt"
	"time"

	"chat-activity-service/internal/query/core/domain"
	"chat-activity-service/internal/query/core/ports"
)

type GetHourlyDistributionInput struct {
	Scope domain.Scope
	ID    string
	From  time.Time
	To    time.Time
}

type GetHourlyDistributionUseCase struct {
	reader ports.ActivityReaderPort
}

func NewGetHourlyDistributionUseCase(reader ports.ActivityReaderPort) *GetHourlyDistributionUseCase {
	return &GetHourlyDistributionUseCase{reader: reader}
}

// Execute sums each hour bucket across every day in range and converts
// the sums to shares of the grand total. Always 24 pairs, "00" through
// "23" in order; all zeros when the range saw no activity.
func (uc *GetHourlyDistributionUseCase) Execute(ctx context.Context, in GetHourlyDistributionInput) ([]domain.HourlyShare, error) {
	if !validScope(in.Scope) {
		return nil, ErrInvalidScope
	}
	if in.ID == "" {
		return nil, ErrInvalidResource
	}

	window, err := uc.reader.ResourceWindow(ctx, in.Scope, in.ID, in.From, in.To)
	if err != nil {
		return nil, err
	}

	var sums [24]int64
	var grand int64
	for _, day := range window.Days {
		for hour, total := range day.Hourly {
			sums[hour] += total
			grand += total
		}
	}

	shares := make([]domain.HourlyShare, 24)
	for hour := range sums {
		var percent float64
		if grand > 0 {
			percent = float64(sums[hour]) / float64(grand)
		}
		shares[hour] = domain.HourlyShare{
			Hour:    fmt.Sprintf("%02d", hour),
			Percent: percent,
		}
	}

	return shares, nil
}
