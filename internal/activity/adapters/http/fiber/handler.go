package fiber

import (
	"context"
	"errors"
	"net/http"

	"chat-activity-service/internal/activity/core/domain"
	"chat-activity-service/internal/activity/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RegisterEventUseCase interface {
	Execute(ctx context.Context, in usecase.RegisterEventInput) error
	BulkRegisterEvents(ctx context.Context, in usecase.BulkRegisterEventsInput) (usecase.BulkRegisterEventsResult, error)
}

type EventHandler struct {
	registerUC RegisterEventUseCase
}

func NewEventHandler(registerUC RegisterEventUseCase) *EventHandler {
	return &EventHandler{registerUC: registerUC}
}

// CreateEvent godoc
// @Summary Ingest a single event
// @Description Applies one interaction or lifecycle event to the aggregates
// @Tags Events
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "Event payload"
// @Success 201 {object} CreateEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *fiber.Ctx) error {
	var req CreateEventRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	err := h.registerUC.Execute(c.UserContext(), toInput(req))
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(http.StatusCreated).JSON(CreateEventResponse{
		Status: "accepted",
	})
}

// BulkCreateEvents godoc
// @Summary Bulk ingest events
// @Description Validates the whole batch, then applies it in order
// @Tags Events
// @Accept json
// @Produce json
// @Param request body BulkCreateEventsRequest true "Bulk event payload"
// @Success 201 {object} BulkCreateEventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/bulk [post]
func (h *EventHandler) BulkCreateEvents(c *fiber.Ctx) error {
	var req BulkCreateEventsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	if len(req.Events) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "events_list_required",
		})
	}

	inputs := make([]usecase.RegisterEventInput, len(req.Events))
	for i, e := range req.Events {
		inputs[i] = toInput(e)
	}

	result, err := h.registerUC.BulkRegisterEvents(
		c.UserContext(),
		usecase.BulkRegisterEventsInput{Events: inputs},
	)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(BulkCreateEventsResponse{
		Accepted: result.Accepted,
	})
}

func (h *EventHandler) errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidEvent),
		errors.Is(err, usecase.ErrFutureTime):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_event",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrUnknownEventKind):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "unknown_event_kind",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func toInput(req CreateEventRequest) usecase.RegisterEventInput {
	return usecase.RegisterEventInput{
		Type:           req.Type,
		ChannelID:      req.ChannelID,
		UserID:         req.UserID,
		Emoji:          req.Emoji,
		ItemUserID:     req.ItemUserID,
		ThreadID:       req.ThreadID,
		ThreadAuthorID: req.ThreadAuthorID,
		DisplayName:    req.DisplayName,
		Remove:         req.Remove,
		Timestamp:      req.Timestamp,
	}
}
