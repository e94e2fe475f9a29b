package fiber_test

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"testing"
	"time"

	"chat-activity-service/internal/query/core/domain"
	"chat-activity-service/internal/query/core/usecase"

	adapter "chat-activity-service/internal/query/adapters/http/fiber"

	"github.com/gofiber/fiber/v2"
)

// ------------------------------------------------------------
// FAKES
// ------------------------------------------------------------

type fakeHeatmapUC struct {
	Fn func(ctx context.Context, in usecase.GetHeatmapInput) ([]domain.HeatmapCell, error)
}

func (f *fakeHeatmapUC) Execute(ctx context.Context, in usecase.GetHeatmapInput) ([]domain.HeatmapCell, error) {
	return f.Fn(ctx, in)
}

type fakeHoursUC struct {
	Fn func(ctx context.Context, in usecase.GetHourlyDistributionInput) ([]domain.HourlyShare, error)
}

func (f *fakeHoursUC) Execute(ctx context.Context, in usecase.GetHourlyDistributionInput) ([]domain.HourlyShare, error) {
	return f.Fn(ctx, in)
}

type fakeTopUC struct {
	Fn func(ctx context.Context, in usecase.GetTopRankedInput) ([]domain.RankingEntry, error)
}

func (f *fakeTopUC) Execute(ctx context.Context, in usecase.GetTopRankedInput) ([]domain.RankingEntry, error) {
	return f.Fn(ctx, in)
}

type fakeRecentUC struct {
	Fn func(ctx context.Context, in usecase.GetRecentRankedInput) ([]domain.RankingEntry, error)
}

func (f *fakeRecentUC) Execute(ctx context.Context, in usecase.GetRecentRankedInput) ([]domain.RankingEntry, error) {
	return f.Fn(ctx, in)
}

type fakeSummaryUC struct {
	Fn func(ctx context.Context, in usecase.GetSummaryInput) ([]domain.SummaryRow, error)
}

func (f *fakeSummaryUC) Execute(ctx context.Context, in usecase.GetSummaryInput) ([]domain.SummaryRow, error) {
	return f.Fn(ctx, in)
}

type fakeActiveUC struct {
	Fn func(ctx context.Context, in usecase.GetActiveUsersInput) ([]domain.ActiveUser, error)
}

func (f *fakeActiveUC) Execute(ctx context.Context, in usecase.GetActiveUsersInput) ([]domain.ActiveUser, error) {
	return f.Fn(ctx, in)
}

type fakes struct {
	heatmap *fakeHeatmapUC
	hours   *fakeHoursUC
	top     *fakeTopUC
	recent  *fakeRecentUC
	summary *fakeSummaryUC
	active  *fakeActiveUC
}

func setupApp() (*fiber.App, *fakes) {
	f := &fakes{
		heatmap: &fakeHeatmapUC{Fn: func(ctx context.Context, in usecase.GetHeatmapInput) ([]domain.HeatmapCell, error) {
			return nil, nil
		}},
		hours: &fakeHoursUC{Fn: func(ctx context.Context, in usecase.GetHourlyDistributionInput) ([]domain.HourlyShare, error) {
			return nil, nil
		}},
		top: &fakeTopUC{Fn: func(ctx context.Context, in usecase.GetTopRankedInput) ([]domain.RankingEntry, error) {
			return nil, nil
		}},
		recent: &fakeRecentUC{Fn: func(ctx context.Context, in usecase.GetRecentRankedInput) ([]domain.RankingEntry, error) {
			return nil, nil
		}},
		summary: &fakeSummaryUC{Fn: func(ctx context.Context, in usecase.GetSummaryInput) ([]domain.SummaryRow, error) {
			return nil, nil
		}},
		active: &fakeActiveUC{Fn: func(ctx context.Context, in usecase.GetActiveUsersInput) ([]domain.ActiveUser, error) {
			return nil, nil
		}},
	}

	handler := adapter.NewStatsHandler(f.heatmap, f.hours, f.top, f.recent, f.summary, f.active)

	app := fiber.New()
	app.Get("/stats/:scope/:id/heatmap", handler.GetHeatmap)
	app.Get("/stats/:scope/:id/hours", handler.GetHours)
	app.Get("/stats/:scope/:id/top", handler.GetTop)
	app.Get("/stats/:scope/:id/recent", handler.GetRecent)
	app.Get("/stats/:scope/:id/summary", handler.GetSummary)
	app.Get("/channels/:id/active", handler.GetActiveUsers)

	return app, f
}

func getBody(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	return resp.StatusCode, string(body)
}

// ------------------------------------------------------------
// TUPLE BODIES
// ------------------------------------------------------------

func TestGetHeatmap_TupleBody(t *testing.T) {
	app, f := setupApp()
	f.heatmap.Fn = func(ctx context.Context, in usecase.GetHeatmapInput) ([]domain.HeatmapCell, error) {
		if in.Scope != domain.ScopeUser || in.ID != "u1" {
			t.Fatalf("unexpected input: %+v", in)
		}
		return []domain.HeatmapCell{
			{Day: "2021-01-01", Opacity: 0.15},
			{Day: "2021-01-02", Opacity: 1},
		}, nil
	}

	status, body := getBody(t, app, "/stats/user/u1/heatmap?from=2021-01-01&to=2021-01-02")

	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	want := `[["2021-01-01",0.15],["2021-01-02",1]]`
	if body != want {
		t.Fatalf("expected body %s, got %s", want, body)
	}
}

func TestGetHours_TupleBody(t *testing.T) {
	app, f := setupApp()
	f.hours.Fn = func(ctx context.Context, in usecase.GetHourlyDistributionInput) ([]domain.HourlyShare, error) {
		return []domain.HourlyShare{
			{Hour: "00", Percent: 0.8},
			{Hour: "01", Percent: 0.2},
		}, nil
	}

	status, body := getBody(t, app, "/stats/channel/c1/hours?from=2021-01-01&to=2021-01-01")

	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	want := `[["00",0.8],["01",0.2]]`
	if body != want {
		t.Fatalf("expected body %s, got %s", want, body)
	}
}

func TestGetTop_TupleBody(t *testing.T) {
	app, f := setupApp()
	lastAt := time.Date(2021, 1, 2, 15, 4, 5, 0, time.UTC)
	f.top.Fn = func(ctx context.Context, in usecase.GetTopRankedInput) ([]domain.RankingEntry, error) {
		if in.Limit != 3 {
			t.Fatalf("expected limit 3, got %d", in.Limit)
		}
		return []domain.RankingEntry{
			{ID: "c1", Name: "general", Total: 42, LastAt: lastAt},
		}, nil
	}

	status, body := getBody(t, app, "/stats/user/u1/top?limit=3")

	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	want := `[["c1","general",42,"2021-01-02T15:04:05Z"]]`
	if body != want {
		t.Fatalf("expected body %s, got %s", want, body)
	}
}

func TestGetTop_DefaultLimit(t *testing.T) {
	app, f := setupApp()
	f.top.Fn = func(ctx context.Context, in usecase.GetTopRankedInput) ([]domain.RankingEntry, error) {
		if in.Limit != 10 {
			t.Fatalf("expected default limit 10, got %d", in.Limit)
		}
		return nil, nil
	}

	status, _ := getBody(t, app, "/stats/user/u1/top")

	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
}

func TestGetSummary_SentinelsMarshalAsNull(t *testing.T) {
	app, f := setupApp()
	f.summary.Fn = func(ctx context.Context, in usecase.GetSummaryInput) ([]domain.SummaryRow, error) {
		return []domain.SummaryRow{
			{Description: "messages", InRange: 12, AllTime: 345},
			{Description: "avg messages per thread", InRange: math.NaN(), AllTime: math.Inf(-1)},
		}, nil
	}

	status, body := getBody(t, app, "/stats/user/u1/summary?from=2021-01-01&to=2021-01-02")

	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	want := `[["messages",12,345],["avg messages per thread",null,null]]`
	if body != want {
		t.Fatalf("expected body %s, got %s", want, body)
	}
}

func TestGetActiveUsers_TupleBody(t *testing.T) {
	app, f := setupApp()
	lastAt := time.Date(2021, 1, 2, 15, 4, 5, 0, time.UTC)
	f.active.Fn = func(ctx context.Context, in usecase.GetActiveUsersInput) ([]domain.ActiveUser, error) {
		if in.ChannelID != "c1" {
			t.Fatalf("expected channel c1, got %q", in.ChannelID)
		}
		if in.Window != 30*time.Minute {
			t.Fatalf("expected 30m window, got %v", in.Window)
		}
		return []domain.ActiveUser{
			{UserID: "u1", Name: "Alice", LastAt: lastAt},
		}, nil
	}

	status, body := getBody(t, app, "/channels/c1/active?window_minutes=30")

	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	want := `[["u1","Alice","2021-01-02T15:04:05Z"]]`
	if body != want {
		t.Fatalf("expected body %s, got %s", want, body)
	}
}

// ------------------------------------------------------------
// BAD REQUESTS
// ------------------------------------------------------------

func TestGetHeatmap_InvalidScope(t *testing.T) {
	app, _ := setupApp()

	status, body := getBody(t, app, "/stats/team/u1/heatmap?from=2021-01-01&to=2021-01-02")

	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}

	var errResp adapter.ErrorResponse
	if err := json.Unmarshal([]byte(body), &errResp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if errResp.Error != "invalid_query" {
		t.Fatalf("expected invalid_query, got %q", errResp.Error)
	}
}

func TestGetHeatmap_InvalidDates(t *testing.T) {
	app, _ := setupApp()

	for _, path := range []string{
		"/stats/user/u1/heatmap?to=2021-01-02",
		"/stats/user/u1/heatmap?from=2021-01-01",
		"/stats/user/u1/heatmap?from=january&to=2021-01-02",
	} {
		status, _ := getBody(t, app, path)
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400 for %s, got %d", path, status)
		}
	}
}

func TestGetTop_InvalidLimit(t *testing.T) {
	app, f := setupApp()
	f.top.Fn = func(ctx context.Context, in usecase.GetTopRankedInput) ([]domain.RankingEntry, error) {
		return nil, usecase.ErrInvalidLimit
	}

	status, _ := getBody(t, app, "/stats/user/u1/top?limit=0")

	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestGetActiveUsers_InvalidWindow(t *testing.T) {
	app, _ := setupApp()

	status, _ := getBody(t, app, "/channels/c1/active?window_minutes=-5")

	if status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

// ------------------------------------------------------------
// USE CASE FAILURES
// ------------------------------------------------------------

func TestGetSummary_InternalError(t *testing.T) {
	app, f := setupApp()
	f.summary.Fn = func(ctx context.Context, in usecase.GetSummaryInput) ([]domain.SummaryRow, error) {
		return nil, context.DeadlineExceeded
	}

	status, body := getBody(t, app, "/stats/user/u1/summary?from=2021-01-01&to=2021-01-02")

	if status != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", status)
	}

	var errResp adapter.ErrorResponse
	if err := json.Unmarshal([]byte(body), &errResp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if errResp.Error != "internal_server_error" {
		t.Fatalf("expected internal_server_error, got %q", errResp.Error)
	}
}
