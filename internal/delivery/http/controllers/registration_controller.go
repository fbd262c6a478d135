package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"devevents/internal/delivery/http/helpers"
	"devevents/internal/delivery/http/middleware"
	"devevents/internal/domain"
)

// RegisterRequest is the request body for POST /api/registrations.
type RegisterRequest struct {
	EventID   string `json:"eventId" validate:"required,uuid"`
	UserEmail string `json:"userEmail" validate:"required,email"`
	UserName  string `json:"userName" validate:"required"`
}

// VerifyTicketRequest is the request body for POST /api/registrations/verify.
type VerifyTicketRequest struct {
	TicketID string `json:"ticketId" validate:"required"`
}

// RegistrationStatusResponse is the data payload of GET /api/registrations/status/{eventId}.
type RegistrationStatusResponse struct {
	IsRegistered bool `json:"isRegistered"`
}

// VerifyTicketResponse is the data payload of a successful check-in.
type VerifyTicketResponse struct {
	Verified     bool                 `json:"verified"`
	Registration *domain.Registration `json:"registration"`
	Event        *domain.Event        `json:"event"`
}

// RegistrationSuccessResponse is the success response envelope for POST /api/registrations (201).
type RegistrationSuccessResponse struct {
	Data  *domain.Registration `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// RegistrationStatusSuccessResponse is the success envelope for the status lookup.
type RegistrationStatusSuccessResponse struct {
	Data  RegistrationStatusResponse `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// TicketSuccessResponse is the success envelope for a single ticket.
type TicketSuccessResponse struct {
	Data  *domain.RegistrationWithEvent `json:"data"`
	Error *helpers.APIError             `json:"error"`
}

// MyEventsSuccessResponse is the success envelope for GET /api/registrations/my-events.
type MyEventsSuccessResponse struct {
	Data  []*domain.RegistrationWithEvent `json:"data"`
	Error *helpers.APIError               `json:"error"`
}

// VerifyTicketSuccessResponse is the success envelope for POST /api/registrations/verify.
type VerifyTicketSuccessResponse struct {
	Data  VerifyTicketResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register for an event
// @Description Registers the authenticated user for an event. The returned registration id is the ticket id. A user can register for an event once.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param registration body RegisterRequest true "Registration data"
// @Success 201 {object} controllers.RegistrationSuccessResponse "data contains the registration"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or already_registered"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.Register(r.Context(), req.EventID, userID, req.UserEmail, req.UserName)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// CheckStatus godoc
// @Summary Check registration status
// @Description Reports whether the caller is registered for the event. Anonymous callers are never registered.
// @Tags registrations
// @Produce json
// @Param eventId path string true "Event ID (UUID)"
// @Success 200 {object} controllers.RegistrationStatusSuccessResponse "data.isRegistered"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/status/{eventId} [get]
func (c *RegistrationController) CheckStatus(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	userID, _ := middleware.UserIDFromContext(r.Context())
	if !helpers.IsUUID(eventID) {
		helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationStatusResponse{IsRegistered: false})
		return
	}
	registered, err := c.Service.CheckStatus(r.Context(), eventID, userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "event not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RegistrationStatusResponse{IsRegistered: registered})
}

// MyEvents godoc
// @Summary List my registrations
// @Description Returns the caller's registrations, newest first, each joined with its event. event is null when the event no longer exists.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.MyEventsSuccessResponse "data contains registrations with events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/my-events [get]
func (c *RegistrationController) MyEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	items, err := c.Service.ListForUser(r.Context(), userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "registrations not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, items)
}

// GetTicket godoc
// @Summary Get a ticket
// @Description Returns a registration joined with its event. Only the registrant may view it.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ticket (registration) ID"
// @Success 200 {object} controllers.TicketSuccessResponse "data contains registration and event"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/ticket/{id} [get]
func (c *RegistrationController) GetTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	id := r.PathValue("id")
	if !helpers.IsUUID(id) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "ticket not found")
		return
	}
	ticket, err := c.Service.GetTicket(r.Context(), id, userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "ticket not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ticket)
}

// GetTicketQR godoc
// @Summary Get a ticket QR code
// @Description Returns a PNG QR code encoding the ticket id, for scanning at the door. Only the registrant may fetch it.
// @Tags registrations
// @Produce png
// @Security BearerAuth
// @Param id path string true "Ticket (registration) ID"
// @Success 200 {file} binary "PNG image"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/ticket/{id}/qr [get]
func (c *RegistrationController) GetTicketQR(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	id := r.PathValue("id")
	if !helpers.IsUUID(id) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "ticket not found")
		return
	}
	png, err := c.Service.GetTicketCode(r.Context(), id, userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "ticket not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

// VerifyTicket godoc
// @Summary Check a ticket in
// @Description Verifies a scanned ticket and marks it checked in. Only the creator of the ticket's event may verify. A ticket can be checked in once.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ticket body VerifyTicketRequest true "Ticket to verify"
// @Success 200 {object} controllers.VerifyTicketSuccessResponse "data.verified is true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, already_checked_in or ticket_cancelled"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/verify [post]
func (c *RegistrationController) VerifyTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	var req VerifyTicketRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	// A scanned code that is not a ticket id cannot match any ticket.
	if !helpers.IsUUID(req.TicketID) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "ticket not found")
		return
	}
	result, err := c.Service.VerifyTicket(r.Context(), req.TicketID, userID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err, "ticket not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, VerifyTicketResponse{
		Verified:     true,
		Registration: result.Registration,
		Event:        result.Event,
	})
}
