package domain

import "errors"

// Sentinel errors shared by services and repositories. Controllers map them to
// HTTP status codes; anything else is an internal error.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrDuplicateSlug     = errors.New("slug already in use")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrAlreadyCheckedIn  = errors.New("ticket already checked in")
	ErrTicketCancelled   = errors.New("ticket has been cancelled")
)
