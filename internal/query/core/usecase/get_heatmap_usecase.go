package usecase

import (
	"context"
	"time"

	"chat-activity-service/internal/query/core/domain"
	"chat-activity-service/internal/query/core/ports"
)

const (
	// DefaultMinOpacity is the bottom of the rendered scale for days
	// that have any activity at all.
	DefaultMinOpacity = 0.15
	// zeroOpacity marks days with no activity; kept below the scale so
	// "no data" never looks like "low data".
	zeroOpacity = 0.05

	// scaleWindowDays is the trailing window the heatmap scale is
	// anchored to: 52 weeks ending at "now", independent of the
	// queried range.
	scaleWindowDays = 52 * 7
)

type GetHeatmapInput struct {
	Scope domain.Scope
	ID    string
	From  time.Time
	To    time.Time
	// Now anchors the 52-week scale window. Zero means wall-clock now.
	Now time.Time
	// MinOpacity overrides DefaultMinOpacity when positive.
	MinOpacity float64
}

type GetHeatmapUseCase struct {
	reader ports.ActivityReaderPort
}

func NewGetHeatmapUseCase(reader ports.ActivityReaderPort) *GetHeatmapUseCase {
	return &GetHeatmapUseCase{reader: reader}
}

func (uc *GetHeatmapUseCase) Execute(ctx context.Context, in GetHeatmapInput) ([]domain.HeatmapCell, error) {
	if !validScope(in.Scope) {
		return nil, ErrInvalidScope
	}
	if in.ID == "" {
		return nil, ErrInvalidResource
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	minOpacity := in.MinOpacity
	if minOpacity <= 0 {
		minOpacity = DefaultMinOpacity
	}

	// The scale anchor: the busiest day of the trailing 52 weeks.
	scaleFrom := now.AddDate(0, 0, -(scaleWindowDays - 1))
	scaleWindow, err := uc.reader.ResourceWindow(ctx, in.Scope, in.ID, scaleFrom, now)
	if err != nil {
		return nil, err
	}

	var maxSum int64
	for _, day := range scaleWindow.Days {
		if day.Interactions > maxSum {
			maxSum = day.Interactions
		}
	}

	window, err := uc.reader.ResourceWindow(ctx, in.Scope, in.ID, in.From, in.To)
	if err != nil {
		return nil, err
	}

	cells := make([]domain.HeatmapCell, 0, len(window.Days))
	for _, day := range window.Days {
		opacity := zeroOpacity
		if day.Interactions > 0 {
			opacity = Normalize(float64(day.Interactions), 0, float64(maxSum), minOpacity, 1.0)
		}
		cells = append(cells, domain.HeatmapCell{Day: day.Day, Opacity: opacity})
	}

	return cells, nil
}
