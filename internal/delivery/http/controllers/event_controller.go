package controllers

import (
	"log/slog"
	"net/http"

	"devevents/internal/delivery/http/helpers"
	"devevents/internal/delivery/http/middleware"
	"devevents/internal/domain"
)

// CreateEventRequest is the request body for POST /api/events. Agenda is optional.
type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Address     string `json:"address" validate:"required"`
	Organizer   string `json:"organizer" validate:"required"`
	Description string `json:"description" validate:"required"`
	Agenda      string `json:"agenda"`
}

func (c CreateEventRequest) toInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:       c.Title,
		Image:       c.Image,
		Slug:        c.Slug,
		Location:    c.Location,
		Date:        c.Date,
		Time:        c.Time,
		Address:     c.Address,
		Organizer:   c.Organizer,
		Description: c.Description,
		Agenda:      c.Agenda,
	}
}

// EventSuccessResponse is the success response envelope for a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success response envelope for GET /api/events.
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateEvent godoc
// @Summary Create an event
// @Description Publish a new event. The slug must be unique; the authenticated user is recorded as the creator and is the only one allowed to check tickets in.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or duplicate_slug"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.Create(r.Context(), req.toInput(), userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List events
// @Description Returns events newest first. Without page parameters every event is returned; with page/page_size the result is paginated and X-Total-Count carries the total.
// @Tags events
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size (max 100)"
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the events"
// @Header 200 {integer} X-Total-Count "Total number of events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	events, total, err := c.Service.ListAll(r.Context(), params)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "events not found")
		return
	}
	helpers.SetTotalCountHeader(w, total)
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEventBySlug godoc
// @Summary Get an event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} controllers.EventSuccessResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{slug} [get]
func (c *EventController) GetEventBySlug(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}
