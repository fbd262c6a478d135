package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"devevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService creates an EventService backed by eventRepo. Each call runs under timeout.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) Create(ctx context.Context, in domain.CreateEventInput, creatorID string) (*domain.Event, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if creatorID == "" {
		return nil, domain.ErrUnauthenticated
	}

	in = normalizeEventInput(in)
	if missing := missingEventFields(in); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s required", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}

	now := time.Now().UTC()
	event := domain.NewEvent(in, creatorID, now, now)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return nil, domain.ErrDuplicateSlug
		}
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListAll(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	if params.Unbounded() {
		return events, len(events), nil
	}
	total, err := s.eventRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}
	return events, total, nil
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	slug = normalizeSlug(slug)
	if slug == "" {
		return nil, domain.ErrNotFound
	}
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event by slug: %w", err)
	}
	return event, nil
}

// normalizeSlug trims surrounding whitespace. Case is preserved: slugs are unique byte for byte.
func normalizeSlug(slug string) string {
	return strings.TrimSpace(slug)
}

func normalizeEventInput(in domain.CreateEventInput) domain.CreateEventInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Image = strings.TrimSpace(in.Image)
	in.Slug = normalizeSlug(in.Slug)
	in.Location = strings.TrimSpace(in.Location)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Address = strings.TrimSpace(in.Address)
	in.Organizer = strings.TrimSpace(in.Organizer)
	in.Description = strings.TrimSpace(in.Description)
	in.Agenda = strings.TrimSpace(in.Agenda)
	return in
}

// missingEventFields lists the required fields that are empty. Agenda is optional.
func missingEventFields(in domain.CreateEventInput) []string {
	var missing []string
	for _, f := range []struct {
		name, value string
	}{
		{"title", in.Title},
		{"image", in.Image},
		{"slug", in.Slug},
		{"location", in.Location},
		{"date", in.Date},
		{"time", in.Time},
		{"address", in.Address},
		{"organizer", in.Organizer},
		{"description", in.Description},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// withTimeout bounds ctx by d; a non-positive d leaves ctx unbounded.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
