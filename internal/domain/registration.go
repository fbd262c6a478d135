package domain

import (
	"context"
	"time"
)

// RegistrationStatus is the lifecycle state of a registration.
type RegistrationStatus string

const (
	RegistrationStatusRegistered RegistrationStatus = "registered"
	RegistrationStatusCancelled  RegistrationStatus = "cancelled"
	RegistrationStatusCheckedIn  RegistrationStatus = "checked_in"
)

// Valid reports whether s is a known status.
func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationStatusRegistered, RegistrationStatusCancelled, RegistrationStatusCheckedIn:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s RegistrationStatus) Terminal() bool {
	return s == RegistrationStatusCancelled || s == RegistrationStatusCheckedIn
}

// Registration is a user's claim to attend one event. Once issued it doubles as the ticket.
// UserEmail and UserName are a snapshot taken at booking time.
// swagger:model Registration
type Registration struct {
	ID          string             `json:"id"`
	EventID     string             `json:"event_id"`
	UserID      string             `json:"user_id"`
	UserEmail   string             `json:"user_email"`
	UserName    string             `json:"user_name"`
	Status      RegistrationStatus `json:"status"`
	CheckedInAt *time.Time         `json:"checked_in_at,omitempty"`
	CheckedInBy *string            `json:"checked_in_by,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// NewRegistration creates a new Registration in the registered state. ID is set by the repository on create.
func NewRegistration(eventID, userID, email, name string, createdAt, updatedAt time.Time) *Registration {
	return &Registration{
		EventID:   eventID,
		UserID:    userID,
		UserEmail: email,
		UserName:  name,
		Status:    RegistrationStatusRegistered,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// RegistrationWithEvent bundles a registration with its related event.
// Event is nil when the referenced event no longer exists.
type RegistrationWithEvent struct {
	Registration *Registration `json:"registration"`
	Event        *Event        `json:"event"`
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Create inserts reg. The (event, user) pair is unique: a second insert returns ErrAlreadyRegistered.
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id string) (*Registration, error)
	ExistsForEventAndUser(ctx context.Context, eventID, userID string) (bool, error)
	ListByUserID(ctx context.Context, userID string) ([]*Registration, error)
	// MarkCheckedIn moves a registered ticket to checked_in. It returns ErrNotFound
	// when no row in the registered state matched id.
	MarkCheckedIn(ctx context.Context, id, verifierID string, at time.Time) (*Registration, error)
}

// RegistrationService defines attendee registration and ticket operations.
type RegistrationService interface {
	Register(ctx context.Context, eventID, userID, email, name string) (*Registration, error)
	// CheckStatus reports whether userID holds a registration for eventID. Anonymous callers get false.
	CheckStatus(ctx context.Context, eventID, userID string) (bool, error)
	ListForUser(ctx context.Context, userID string) ([]*RegistrationWithEvent, error)
	GetTicket(ctx context.Context, registrationID, userID string) (*RegistrationWithEvent, error)
	// GetTicketCode returns a PNG QR code for the ticket, subject to the same ownership rule as GetTicket.
	GetTicketCode(ctx context.Context, registrationID, userID string) ([]byte, error)
	VerifyTicket(ctx context.Context, registrationID, verifierID string) (*RegistrationWithEvent, error)
}

// TicketCodeEncoder renders a ticket payload as a scannable image.
type TicketCodeEncoder interface {
	Encode(payload string) ([]byte, error)
}

// RegistrationMetrics records registration and door activity.
type RegistrationMetrics interface {
	RegistrationCreated()
	TicketCheckedIn()
	TicketRejected(reason string)
}
