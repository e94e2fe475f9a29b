package fiber

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"chat-activity-service/internal/query/core/domain"
	"chat-activity-service/internal/query/core/usecase"

	"github.com/gofiber/fiber/v2"
)

const dateLayout = "2006-01-02"

type GetHeatmapUseCase interface {
	Execute(ctx context.Context, in usecase.GetHeatmapInput) ([]domain.HeatmapCell, error)
}

type GetHourlyDistributionUseCase interface {
	Execute(ctx context.Context, in usecase.GetHourlyDistributionInput) ([]domain.HourlyShare, error)
}

type GetTopRankedUseCase interface {
	Execute(ctx context.Context, in usecase.GetTopRankedInput) ([]domain.RankingEntry, error)
}

type GetRecentRankedUseCase interface {
	Execute(ctx context.Context, in usecase.GetRecentRankedInput) ([]domain.RankingEntry, error)
}

type GetSummaryUseCase interface {
	Execute(ctx context.Context, in usecase.GetSummaryInput) ([]domain.SummaryRow, error)
}

type GetActiveUsersUseCase interface {
	Execute(ctx context.Context, in usecase.GetActiveUsersInput) ([]domain.ActiveUser, error)
}

type StatsHandler struct {
	heatmapUC GetHeatmapUseCase
	hoursUC   GetHourlyDistributionUseCase
	topUC     GetTopRankedUseCase
	recentUC  GetRecentRankedUseCase
	summaryUC GetSummaryUseCase
	activeUC  GetActiveUsersUseCase
}

func NewStatsHandler(
	heatmapUC GetHeatmapUseCase,
	hoursUC GetHourlyDistributionUseCase,
	topUC GetTopRankedUseCase,
	recentUC GetRecentRankedUseCase,
	summaryUC GetSummaryUseCase,
	activeUC GetActiveUsersUseCase,
) *StatsHandler {
	return &StatsHandler{
		heatmapUC: heatmapUC,
		hoursUC:   hoursUC,
		topUC:     topUC,
		recentUC:  recentUC,
		summaryUC: summaryUC,
		activeUC:  activeUC,
	}
}

// GetHeatmap godoc
// @Summary Activity heatmap over a day range
// @Description One [day, opacity] tuple per calendar day in [from, to]
// @Tags Stats
// @Produce json
// @Param scope path string true "Scope: user | channel"
// @Param id path string true "Resource id"
// @Param from query string true "From date, YYYY-MM-DD"
// @Param to query string true "To date, YYYY-MM-DD"
// @Success 200 {array} HeatmapCellDTO
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/{scope}/{id}/heatmap [get]
func (h *StatsHandler) GetHeatmap(c *fiber.Ctx) error {
	scope, id, from, to, err := h.rangeParams(c)
	if err != nil {
		return h.badRequest(c, err)
	}

	cells, err := h.heatmapUC.Execute(c.UserContext(), usecase.GetHeatmapInput{
		Scope: scope,
		ID:    id,
		From:  from,
		To:    to,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(heatmapCells(cells))
}

// GetHours godoc
// @Summary Hourly activity distribution over a day range
// @Description 24 [hour, percent] tuples, "00" through "23"
// @Tags Stats
// @Produce json
// @Param scope path string true "Scope: user | channel"
// @Param id path string true "Resource id"
// @Param from query string true "From date, YYYY-MM-DD"
// @Param to query string true "To date, YYYY-MM-DD"
// @Success 200 {array} HourlyShareDTO
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/{scope}/{id}/hours [get]
func (h *StatsHandler) GetHours(c *fiber.Ctx) error {
	scope, id, from, to, err := h.rangeParams(c)
	if err != nil {
		return h.badRequest(c, err)
	}

	shares, err := h.hoursUC.Execute(c.UserContext(), usecase.GetHourlyDistributionInput{
		Scope: scope,
		ID:    id,
		From:  from,
		To:    to,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(hourlyShares(shares))
}

// GetTop godoc
// @Summary Top counterparts by all-time message volume
// @Description [id, name, total, last_at] tuples, highest total first
// @Tags Stats
// @Produce json
// @Param scope path string true "Scope: user | channel"
// @Param id path string true "Resource id"
// @Param limit query int false "Result size limit" default(10)
// @Success 200 {array} RankingEntryDTO
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/{scope}/{id}/top [get]
func (h *StatsHandler) GetTop(c *fiber.Ctx) error {
	scope, id, err := h.scopeParams(c)
	if err != nil {
		return h.badRequest(c, err)
	}

	limit, err := h.limitParam(c)
	if err != nil {
		return h.badRequest(c, err)
	}

	entries, err := h.topUC.Execute(c.UserContext(), usecase.GetTopRankedInput{
		Scope: scope,
		ID:    id,
		Limit: limit,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(rankingEntries(entries))
}

// GetRecent godoc
// @Summary Counterparts most recently active inside a day range
// @Description [id, name, total, last_at] tuples, most recent first
// @Tags Stats
// @Produce json
// @Param scope path string true "Scope: user | channel"
// @Param id path string true "Resource id"
// @Param from query string true "From date, YYYY-MM-DD"
// @Param to query string true "To date, YYYY-MM-DD"
// @Param limit query int false "Result size limit" default(10)
// @Success 200 {array} RankingEntryDTO
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/{scope}/{id}/recent [get]
func (h *StatsHandler) GetRecent(c *fiber.Ctx) error {
	scope, id, from, to, err := h.rangeParams(c)
	if err != nil {
		return h.badRequest(c, err)
	}

	limit, err := h.limitParam(c)
	if err != nil {
		return h.badRequest(c, err)
	}

	entries, err := h.recentUC.Execute(c.UserContext(), usecase.GetRecentRankedInput{
		Scope: scope,
		ID:    id,
		From:  from,
		To:    to,
		Limit: limit,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(rankingEntries(entries))
}

// GetSummary godoc
// @Summary Summary metrics, in-range vs all-time
// @Description [description, in_range, all_time] tuples; empty populations are null
// @Tags Stats
// @Produce json
// @Param scope path string true "Scope: user | channel"
// @Param id path string true "Resource id"
// @Param from query string true "From date, YYYY-MM-DD"
// @Param to query string true "To date, YYYY-MM-DD"
// @Success 200 {array} SummaryRowDTO
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats/{scope}/{id}/summary [get]
func (h *StatsHandler) GetSummary(c *fiber.Ctx) error {
	scope, id, from, to, err := h.rangeParams(c)
	if err != nil {
		return h.badRequest(c, err)
	}

	rows, err := h.summaryUC.Execute(c.UserContext(), usecase.GetSummaryInput{
		Scope: scope,
		ID:    id,
		From:  from,
		To:    to,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(summaryRows(rows))
}

// GetActiveUsers godoc
// @Summary Users currently active in a channel
// @Description [user_id, name, last_at] tuples, most recent first
// @Tags Stats
// @Produce json
// @Param id path string true "Channel id"
// @Param window_minutes query int false "Only users touched within this many minutes"
// @Success 200 {array} ActiveUserDTO
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /channels/{id}/active [get]
func (h *StatsHandler) GetActiveUsers(c *fiber.Ctx) error {
	channelID := c.Params("id")

	var window time.Duration
	if raw := c.Query("window_minutes", ""); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 0 {
			return h.badRequest(c, errors.New("invalid 'window_minutes' parameter"))
		}
		window = time.Duration(minutes) * time.Minute
	}

	users, err := h.activeUC.Execute(c.UserContext(), usecase.GetActiveUsersInput{
		ChannelID: channelID,
		Window:    window,
	})
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(http.StatusOK).JSON(activeUsers(users))
}

func (h *StatsHandler) scopeParams(c *fiber.Ctx) (domain.Scope, string, error) {
	scope := domain.Scope(c.Params("scope"))
	if scope != domain.ScopeUser && scope != domain.ScopeChannel {
		return "", "", errors.New("scope must be 'user' or 'channel'")
	}
	return scope, c.Params("id"), nil
}

func (h *StatsHandler) rangeParams(c *fiber.Ctx) (domain.Scope, string, time.Time, time.Time, error) {
	scope, id, err := h.scopeParams(c)
	if err != nil {
		return "", "", time.Time{}, time.Time{}, err
	}

	from, err := time.Parse(dateLayout, c.Query("from", ""))
	if err != nil {
		return "", "", time.Time{}, time.Time{}, errors.New("invalid 'from' parameter")
	}
	to, err := time.Parse(dateLayout, c.Query("to", ""))
	if err != nil {
		return "", "", time.Time{}, time.Time{}, errors.New("invalid 'to' parameter")
	}

	return scope, id, from, to, nil
}

func (h *StatsHandler) limitParam(c *fiber.Ctx) (int, error) {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return 0, errors.New("invalid 'limit' parameter")
	}
	return limit, nil
}

func (h *StatsHandler) badRequest(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: err.Error(),
	})
}

func (h *StatsHandler) errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidScope),
		errors.Is(err, usecase.ErrInvalidResource),
		errors.Is(err, usecase.ErrInvalidLimit):
		return h.badRequest(c, err)
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
