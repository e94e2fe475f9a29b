package usecase

import (
	"context"
	"math"
	"time"

	"chat-activity-service/internal/query/core/domain"
	"chat-activity-service/internal/query/core/ports"
)

type GetSummaryInput struct {
	Scope domain.Scope
	ID    string
	From  time.Time
	To    time.Time
}

// GetSummaryUseCase computes the fixed menu of summary metrics, each as
// an in-range value paired with its all-time value. Averages over empty
// populations are NaN and max over an empty population is -Inf; the
// presentation boundary guards both.
type GetSummaryUseCase struct {
	reader ports.ActivityReaderPort
}

func NewGetSummaryUseCase(reader ports.ActivityReaderPort) *GetSummaryUseCase {
	return &GetSummaryUseCase{reader: reader}
}

func (uc *GetSummaryUseCase) Execute(ctx context.Context, in GetSummaryInput) ([]domain.SummaryRow, error) {
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

	ranged := accumulateRange(window.Days)
	allTime := accumulateAllTime(window.AllTime)

	rows := []domain.SummaryRow{
		{Description: "messages", InRange: ranged.messages, AllTime: allTime.messages},
		{Description: "unique counterparts", InRange: ranged.uniqueCounterparts, AllTime: allTime.uniqueCounterparts},
		{Description: "max messages per counterpart", InRange: ranged.maxCounterpartMessages, AllTime: allTime.maxCounterpartMessages},
		{Description: "threads", InRange: ranged.threads, AllTime: allTime.threads},
		{Description: "thread messages", InRange: ranged.threadMessages, AllTime: allTime.threadMessages},
		{Description: "avg messages per thread", InRange: avg(ranged.threadMessages, ranged.threads), AllTime: avg(allTime.threadMessages, allTime.threads)},
		{Description: "max messages per thread", InRange: ranged.maxThreadMessages, AllTime: allTime.maxThreadMessages},
		{Description: "avg thread duration seconds", InRange: avg(ranged.threadDurationSum, ranged.threads), AllTime: avg(allTime.threadDurationSum, allTime.threads)},
		{Description: "max thread duration seconds", InRange: ranged.maxThreadDuration, AllTime: allTime.maxThreadDuration},
		{Description: "reactions", InRange: ranged.reactions, AllTime: allTime.reactions},
		{Description: "active hours", InRange: ranged.activeHours, AllTime: allTime.activeHours},
		{Description: "avg active hours per day", InRange: avg(ranged.activeHours, ranged.activeDays), AllTime: avg(allTime.activeHours, allTime.activeDays)},
	}

	return rows, nil
}

type summaryAccumulator struct {
	messages               float64
	uniqueCounterparts     float64
	maxCounterpartMessages float64
	threads                float64
	threadMessages         float64
	maxThreadMessages      float64
	threadDurationSum      float64
	maxThreadDuration      float64
	reactions              float64
	activeHours            float64
	activeDays             float64
}

// threadSpan is one thread's accumulated message count and lifetime
// (first to last registration), merged across day views.
type threadSpan struct {
	total int64
	first time.Time
	last  time.Time
}

func accumulateRange(days []domain.DayView) summaryAccumulator {
	var acc summaryAccumulator

	counterparts := make(map[string]*domain.CounterView)
	spans := make(map[string]*threadSpan)

	for _, day := range days {
		dayActive := false
		for _, total := range day.Hourly {
			if total > 0 {
				acc.activeHours++
				dayActive = true
			}
		}
		if dayActive {
			acc.activeDays++
		}

		for _, c := range day.Counterparts {
			acc.messages += float64(c.Total)
			mergeCounterpart(counterparts, c)
		}
		for _, c := range day.ThreadsAuthored {
			mergeSpan(spans, c)
		}
		for _, c := range day.ThreadsContributed {
			mergeSpan(spans, c)
		}
		for _, c := range day.ReactionsGiven {
			acc.reactions += float64(c.Total)
		}
		for _, c := range day.ReactionsReceived {
			acc.reactions += float64(c.Total)
		}
	}

	acc.uniqueCounterparts = float64(len(counterparts))
	acc.maxCounterpartMessages = MinMax(counterpartViews(counterparts)).MaxTotal
	reduceSpans(spans, &acc)

	return acc
}

func accumulateAllTime(all domain.AllTimeView) summaryAccumulator {
	var acc summaryAccumulator

	for _, total := range all.Hourly {
		if total > 0 {
			acc.activeHours++
		}
	}
	acc.activeDays = float64(all.ActiveDays)

	for _, c := range all.Counterparts {
		acc.messages += float64(c.Total)
	}
	acc.uniqueCounterparts = float64(len(all.Counterparts))
	acc.maxCounterpartMessages = MinMax(all.Counterparts).MaxTotal

	spans := make(map[string]*threadSpan)
	for _, c := range all.ThreadsAuthored {
		mergeSpan(spans, c)
	}
	for _, c := range all.ThreadsContributed {
		mergeSpan(spans, c)
	}
	reduceSpans(spans, &acc)

	for _, c := range all.ReactionsGiven {
		acc.reactions += float64(c.Total)
	}
	for _, c := range all.ReactionsReceived {
		acc.reactions += float64(c.Total)
	}

	return acc
}

func mergeCounterpart(m map[string]*domain.CounterView, c domain.CounterView) {
	merged, ok := m[c.Key]
	if !ok {
		copied := c
		m[c.Key] = &copied
		return
	}
	merged.Total += c.Total
	if c.FirstAt.Before(merged.FirstAt) {
		merged.FirstAt = c.FirstAt
	}
	if c.LastAt.After(merged.LastAt) {
		merged.LastAt = c.LastAt
	}
}

func counterpartViews(m map[string]*domain.CounterView) []domain.CounterView {
	views := make([]domain.CounterView, 0, len(m))
	for _, c := range m {
		views = append(views, *c)
	}
	return views
}

func mergeSpan(spans map[string]*threadSpan, c domain.CounterView) {
	span, ok := spans[c.Key]
	if !ok {
		spans[c.Key] = &threadSpan{total: c.Total, first: c.FirstAt, last: c.LastAt}
		return
	}
	span.total += c.Total
	if c.FirstAt.Before(span.first) {
		span.first = c.FirstAt
	}
	if c.LastAt.After(span.last) {
		span.last = c.LastAt
	}
}

// reduceSpans collapses per-thread spans into count, message sum/max and
// duration sum/max. The max over no threads is -Inf, same sentinel as
// MinMax.
func reduceSpans(spans map[string]*threadSpan, acc *summaryAccumulator) {
	acc.maxThreadMessages = math.Inf(-1)
	acc.maxThreadDuration = math.Inf(-1)

	for _, span := range spans {
		acc.threads++
		acc.threadMessages += float64(span.total)
		if float64(span.total) > acc.maxThreadMessages {
			acc.maxThreadMessages = float64(span.total)
		}

		duration := span.last.Sub(span.first).Seconds()
		acc.threadDurationSum += duration
		if duration > acc.maxThreadDuration {
			acc.maxThreadDuration = duration
		}
	}
}

// avg divides and lets an empty population come through as NaN rather
// than a silent zero.
func avg(sum, population float64) float64 {
	return sum / population
}
