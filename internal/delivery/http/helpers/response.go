package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"devevents/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest        = "bad_request"
	ErrCodeUnauthorized      = "unauthorized"
	ErrCodeForbidden         = "forbidden"
	ErrCodeNotFound          = "not_found"
	ErrCodeDuplicateSlug     = "duplicate_slug"
	ErrCodeAlreadyRegistered = "already_registered"
	ErrCodeAlreadyCheckedIn  = "already_checked_in"
	ErrCodeTicketCancelled   = "ticket_cancelled"
	ErrCodeInternalError     = "internal_error"
)

const internalErrorMessage = "internal server error"

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and
// encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Data:  nil,
		Error: &APIError{Code: code, Message: message},
	})
}

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

var domainErrors = []errorMapping{
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrCodeBadRequest, ""},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, ErrCodeUnauthorized, "unauthorized"},
	{domain.ErrForbidden, http.StatusForbidden, ErrCodeForbidden, "forbidden"},
	{domain.ErrNotFound, http.StatusNotFound, ErrCodeNotFound, ""},
	{domain.ErrDuplicateSlug, http.StatusBadRequest, ErrCodeDuplicateSlug, "an event with this slug already exists"},
	{domain.ErrAlreadyRegistered, http.StatusBadRequest, ErrCodeAlreadyRegistered, "already registered for this event"},
	{domain.ErrAlreadyCheckedIn, http.StatusBadRequest, ErrCodeAlreadyCheckedIn, "ticket already checked in"},
	{domain.ErrTicketCancelled, http.StatusBadRequest, ErrCodeTicketCancelled, "ticket has been cancelled"},
}

// WriteServiceError maps a service error to a status code and error code. Unknown
// errors are logged with the request path and reported as a generic 500 so that
// driver details never reach the client. notFoundMessage names the missing resource.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, notFoundMessage string) {
	for _, m := range domainErrors {
		if !errors.Is(err, m.target) {
			continue
		}
		msg := m.message
		switch {
		case m.target == domain.ErrNotFound:
			msg = notFoundMessage
		case msg == "":
			msg = err.Error()
		}
		WriteJSONError(w, m.status, m.code, msg)
		return
	}
	logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, internalErrorMessage)
}
