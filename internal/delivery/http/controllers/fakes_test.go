package controllers

import (
	"context"
	"io"
	"log/slog"

	"devevents/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const (
	testEventID  = "0f8fad5b-d9cb-469f-a165-70867728950e"
	testTicketID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
)

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	createErr  error
	listErr    error
	getErr     error
	events     []*domain.Event
	total      int
	bySlug     map[string]*domain.Event
	lastInput  domain.CreateEventInput
	lastUserID string
	lastParams domain.PaginationParams
}

func (f *fakeEventService) Create(ctx context.Context, in domain.CreateEventInput, creatorID string) (*domain.Event, error) {
	f.lastInput, f.lastUserID = in, creatorID
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Event{ID: testEventID, Title: in.Title, Slug: in.Slug, CreatedBy: creatorID}, nil
}

func (f *fakeEventService) ListAll(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	f.lastParams = params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.events, f.total, nil
}

func (f *fakeEventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e, ok := f.bySlug[slug]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	registerErr  error
	statusResult bool
	statusErr    error
	listResult   []*domain.RegistrationWithEvent
	listErr      error
	ticket       *domain.RegistrationWithEvent
	ticketErr    error
	code         []byte
	codeErr      error
	verifyResult *domain.RegistrationWithEvent
	verifyErr    error
	statusCalls  int
	lastEventID  string
	lastUserID   string
	lastEmail    string
	lastName     string
	lastTicketID string
}

func (f *fakeRegistrationService) Register(ctx context.Context, eventID, userID, email, name string) (*domain.Registration, error) {
	f.lastEventID, f.lastUserID, f.lastEmail, f.lastName = eventID, userID, email, name
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &domain.Registration{
		ID: testTicketID, EventID: eventID, UserID: userID, UserEmail: email, UserName: name,
		Status: domain.RegistrationStatusRegistered,
	}, nil
}

func (f *fakeRegistrationService) CheckStatus(ctx context.Context, eventID, userID string) (bool, error) {
	f.statusCalls++
	f.lastEventID, f.lastUserID = eventID, userID
	if f.statusErr != nil {
		return false, f.statusErr
	}
	return f.statusResult && userID != "", nil
}

func (f *fakeRegistrationService) ListForUser(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	f.lastUserID = userID
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeRegistrationService) GetTicket(ctx context.Context, registrationID, userID string) (*domain.RegistrationWithEvent, error) {
	f.lastTicketID, f.lastUserID = registrationID, userID
	if f.ticketErr != nil {
		return nil, f.ticketErr
	}
	return f.ticket, nil
}

func (f *fakeRegistrationService) GetTicketCode(ctx context.Context, registrationID, userID string) ([]byte, error) {
	f.lastTicketID, f.lastUserID = registrationID, userID
	if f.codeErr != nil {
		return nil, f.codeErr
	}
	return f.code, nil
}

func (f *fakeRegistrationService) VerifyTicket(ctx context.Context, registrationID, verifierID string) (*domain.RegistrationWithEvent, error) {
	f.lastTicketID, f.lastUserID = registrationID, verifierID
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return f.verifyResult, nil
}
