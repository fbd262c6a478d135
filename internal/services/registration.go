package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"devevents/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Reasons reported to RegistrationMetrics.TicketRejected.
const (
	rejectNotFound      = "not_found"
	rejectForbidden     = "forbidden"
	rejectCheckedIn     = "already_checked_in"
	rejectCancelled     = "cancelled"
	rejectUnknownStatus = "unknown_status"
	rejectMissingEvent  = "missing_event"
)

type registrationService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	emailService     domain.EmailService
	codeEncoder      domain.TicketCodeEncoder
	metrics          domain.RegistrationMetrics
	logger           *slog.Logger
	contextTimeout   time.Duration
	now              func() time.Time
}

// NewRegistrationService creates a RegistrationService. emailService may be nil, in
// which case no confirmation email is sent.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	emailService domain.EmailService,
	codeEncoder domain.TicketCodeEncoder,
	metrics domain.RegistrationMetrics,
	logger *slog.Logger,
	timeout time.Duration,
) domain.RegistrationService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &registrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		emailService:     emailService,
		codeEncoder:      codeEncoder,
		metrics:          metrics,
		logger:           logger,
		contextTimeout:   timeout,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *registrationService) Register(ctx context.Context, eventID, userID, email, name string) (*domain.Registration, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	email = strings.TrimSpace(email)
	name = strings.TrimSpace(name)
	if email == "" || name == "" {
		return nil, fmt.Errorf("%w: userEmail and userName are required", domain.ErrInvalidInput)
	}
	if err := validate.Var(email, "email"); err != nil {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	now := s.now()
	reg := domain.NewRegistration(event.ID, userID, email, name, now, now)
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return nil, domain.ErrAlreadyRegistered
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}
	s.metrics.RegistrationCreated()
	s.sendConfirmation(ctx, reg, event)
	return reg, nil
}

// sendConfirmation is best effort: the registration is already durable, so a mail
// failure is logged and not returned.
func (s *registrationService) sendConfirmation(ctx context.Context, reg *domain.Registration, event *domain.Event) {
	if s.emailService == nil {
		return
	}
	data := &domain.RegistrationConfirmationEmailData{
		Email:      reg.UserEmail,
		Name:       reg.UserName,
		TicketID:   reg.ID,
		EventTitle: event.Title,
		EventSlug:  event.Slug,
		Date:       event.Date,
		Time:       event.Time,
		Location:   event.Location,
		Address:    event.Address,
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
		s.logger.WarnContext(ctx, "registration confirmation email failed",
			"registration_id", reg.ID, "event_id", reg.EventID, "err", err)
	}
}

func (s *registrationService) CheckStatus(ctx context.Context, eventID, userID string) (bool, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if userID == "" || eventID == "" {
		return false, nil
	}
	exists, err := s.registrationRepo.ExistsForEventAndUser(ctx, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("check registration: %w", err)
	}
	return exists, nil
}

func (s *registrationService) ListForUser(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	regs, err := s.registrationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	if len(regs) == 0 {
		return []*domain.RegistrationWithEvent{}, nil
	}

	ids := make([]string, 0, len(regs))
	seen := make(map[string]struct{}, len(regs))
	for _, reg := range regs {
		if _, ok := seen[reg.EventID]; ok {
			continue
		}
		seen[reg.EventID] = struct{}{}
		ids = append(ids, reg.EventID)
	}
	eventsByID, err := s.eventRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get events for registrations: %w", err)
	}

	result := make([]*domain.RegistrationWithEvent, 0, len(regs))
	for _, reg := range regs {
		ev, ok := eventsByID[reg.EventID]
		if !ok {
			s.logger.WarnContext(ctx, "registration references missing event",
				"registration_id", reg.ID, "event_id", reg.EventID)
		}
		result = append(result, &domain.RegistrationWithEvent{
			Registration: reg,
			Event:        ev,
		})
	}
	return result, nil
}

func (s *registrationService) GetTicket(ctx context.Context, registrationID, userID string) (*domain.RegistrationWithEvent, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.loadOwnedTicket(ctx, registrationID, userID)
}

func (s *registrationService) GetTicketCode(ctx context.Context, registrationID, userID string) ([]byte, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	ticket, err := s.loadOwnedTicket(ctx, registrationID, userID)
	if err != nil {
		return nil, err
	}
	png, err := s.codeEncoder.Encode(ticket.Registration.ID)
	if err != nil {
		return nil, fmt.Errorf("encode ticket code: %w", err)
	}
	return png, nil
}

// loadOwnedTicket fetches the registration joined with its event and enforces that
// only the registrant may see it.
func (s *registrationService) loadOwnedTicket(ctx context.Context, registrationID, userID string) (*domain.RegistrationWithEvent, error) {
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	if reg.UserID != userID {
		return nil, domain.ErrForbidden
	}
	event, err := s.eventFor(ctx, reg)
	if err != nil {
		return nil, err
	}
	return &domain.RegistrationWithEvent{Registration: reg, Event: event}, nil
}

// VerifyTicket checks a ticket in at the door. Only the creator of the ticket's event
// may verify it, and a ticket can be checked in once.
func (s *registrationService) VerifyTicket(ctx context.Context, registrationID, verifierID string) (*domain.RegistrationWithEvent, error) {
	ctx, cancel := withTimeout(ctx, s.contextTimeout)
	defer cancel()

	if verifierID == "" {
		return nil, domain.ErrUnauthenticated
	}
	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.metrics.TicketRejected(rejectNotFound)
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get registration: %w", err)
	}
	event, err := s.eventFor(ctx, reg)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.metrics.TicketRejected(rejectMissingEvent)
		}
		return nil, err
	}
	if event.CreatedBy != verifierID {
		s.metrics.TicketRejected(rejectForbidden)
		return nil, domain.ErrForbidden
	}
	if err := s.checkVerifiable(reg); err != nil {
		return nil, err
	}

	updated, err := s.registrationRepo.MarkCheckedIn(ctx, reg.ID, verifierID, s.now())
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("check in registration: %w", err)
		}
		// The status changed between the read and the update; report the state that won.
		current, gerr := s.registrationRepo.GetByID(ctx, reg.ID)
		if gerr != nil {
			if errors.Is(gerr, domain.ErrNotFound) {
				s.metrics.TicketRejected(rejectNotFound)
				return nil, domain.ErrNotFound
			}
			return nil, fmt.Errorf("get registration: %w", gerr)
		}
		if cerr := s.checkVerifiable(current); cerr != nil {
			return nil, cerr
		}
		return nil, fmt.Errorf("check in registration %s: status %q did not change", reg.ID, current.Status)
	}

	s.metrics.TicketCheckedIn()
	s.logger.InfoContext(ctx, "ticket checked in",
		"registration_id", updated.ID, "event_id", updated.EventID, "verifier_id", verifierID)
	return &domain.RegistrationWithEvent{Registration: updated, Event: event}, nil
}

// checkVerifiable rejects tickets in a terminal state.
func (s *registrationService) checkVerifiable(reg *domain.Registration) error {
	switch reg.Status {
	case domain.RegistrationStatusRegistered:
		return nil
	case domain.RegistrationStatusCheckedIn:
		s.metrics.TicketRejected(rejectCheckedIn)
		return domain.ErrAlreadyCheckedIn
	case domain.RegistrationStatusCancelled:
		s.metrics.TicketRejected(rejectCancelled)
		return domain.ErrTicketCancelled
	default:
		s.metrics.TicketRejected(rejectUnknownStatus)
		return fmt.Errorf("registration %s has unknown status %q", reg.ID, reg.Status)
	}
}

// eventFor loads the event a registration points at. A missing event is a data
// anomaly: it is logged and surfaced as ErrNotFound.
func (s *registrationService) eventFor(ctx context.Context, reg *domain.Registration) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.WarnContext(ctx, "registration references missing event",
				"registration_id", reg.ID, "event_id", reg.EventID)
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

type noopMetrics struct{}

func (noopMetrics) RegistrationCreated()  {}
func (noopMetrics) TicketCheckedIn()      {}
func (noopMetrics) TicketRejected(string) {}
