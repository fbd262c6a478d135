package domain

import (
	"context"
	"time"
)

// Event represents a published event.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	Slug        string    `json:"slug"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Address     string    `json:"address"`
	Organizer   string    `json:"organizer"`
	Description string    `json:"description"`
	Agenda      string    `json:"agenda"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateEventInput holds the organizer-supplied fields of a new event. Agenda is optional.
type CreateEventInput struct {
	Title       string
	Image       string
	Slug        string
	Location    string
	Date        string
	Time        string
	Address     string
	Organizer   string
	Description string
	Agenda      string
}

// NewEvent returns a new Event built from input and attributed to createdBy. ID is set by the repository on create.
func NewEvent(in CreateEventInput, createdBy string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       in.Title,
		Image:       in.Image,
		Slug:        in.Slug,
		Location:    in.Location,
		Date:        in.Date,
		Time:        in.Time,
		Address:     in.Address,
		Organizer:   in.Organizer,
		Description: in.Description,
		Agenda:      in.Agenda,
		CreatedBy:   createdBy,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	// Create inserts the event. Returns ErrDuplicateSlug if the slug is taken.
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	// GetByIDs returns the events found for ids keyed by ID. Missing IDs are absent from the map.
	GetByIDs(ctx context.Context, ids []string) (map[string]*Event, error)
	// List returns events newest first. A zero PageSize returns every event.
	List(ctx context.Context, params PaginationParams) ([]*Event, error)
	Count(ctx context.Context) (int, error)
}

// EventService defines event publishing and lookup.
type EventService interface {
	Create(ctx context.Context, in CreateEventInput, creatorID string) (*Event, error)
	ListAll(ctx context.Context, params PaginationParams) ([]*Event, int, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
}
