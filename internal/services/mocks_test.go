package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"devevents/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// mockEventRepository is an in-memory EventRepository that enforces slug uniqueness.
type mockEventRepository struct {
	mu      sync.Mutex
	events  map[string]*domain.Event
	order   []string
	nextID  int
	err     error
	listErr error
}

func newMockEventRepository(events ...*domain.Event) *mockEventRepository {
	m := &mockEventRepository{events: make(map[string]*domain.Event)}
	for _, e := range events {
		m.events[e.ID] = e
		m.order = append(m.order, e.ID)
	}
	return m
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, e := range m.events {
		if e.Slug == event.Slug {
			return domain.ErrDuplicateSlug
		}
	}
	m.nextID++
	event.ID = fmt.Sprintf("ev-%d", m.nextID)
	cp := *event
	m.events[event.ID] = &cp
	m.order = append(m.order, event.ID)
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func (m *mockEventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, e := range m.events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockEventRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make(map[string]*domain.Event)
	for _, id := range ids {
		if e, ok := m.events[id]; ok {
			out[id] = e
		}
	}
	return out, nil
}

func (m *mockEventRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*domain.Event, 0, len(m.order))
	for i := len(m.order) - 1; i >= 0; i-- {
		out = append(out, m.events[m.order[i]])
	}
	if params.Unbounded() {
		return out, nil
	}
	start := params.Offset()
	if start > len(out) {
		return []*domain.Event{}, nil
	}
	end := start + params.PageSize
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], nil
}

func (m *mockEventRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.events), nil
}

// mockRegistrationRepository is an in-memory RegistrationRepository that enforces
// the (event, user) uniqueness constraint atomically under its mutex.
type mockRegistrationRepository struct {
	mu            sync.Mutex
	regs          map[string]*domain.Registration
	nextID        int
	err           error
	markErr       error
	onMarkCheckIn func(m *mockRegistrationRepository, id string)
}

func newMockRegistrationRepository(regs ...*domain.Registration) *mockRegistrationRepository {
	m := &mockRegistrationRepository{regs: make(map[string]*domain.Registration)}
	for _, r := range regs {
		m.regs[r.ID] = r
	}
	return m
}

func (m *mockRegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, r := range m.regs {
		if r.EventID == reg.EventID && r.UserID == reg.UserID {
			return domain.ErrAlreadyRegistered
		}
	}
	m.nextID++
	reg.ID = fmt.Sprintf("reg-%d", m.nextID)
	cp := *reg
	m.regs[reg.ID] = &cp
	return nil
}

func (m *mockRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	r, ok := m.regs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockRegistrationRepository) ExistsForEventAndUser(ctx context.Context, eventID, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	for _, r := range m.regs {
		if r.EventID == eventID && r.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockRegistrationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*domain.Registration, 0)
	for _, r := range m.regs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockRegistrationRepository) MarkCheckedIn(ctx context.Context, id, verifierID string, at time.Time) (*domain.Registration, error) {
	if m.onMarkCheckIn != nil {
		m.onMarkCheckIn(m, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.markErr != nil {
		return nil, m.markErr
	}
	r, ok := m.regs[id]
	if !ok || r.Status != domain.RegistrationStatusRegistered {
		return nil, domain.ErrNotFound
	}
	r.Status = domain.RegistrationStatusCheckedIn
	r.CheckedInAt = &at
	r.CheckedInBy = &verifierID
	r.UpdatedAt = at
	cp := *r
	return &cp, nil
}

func (m *mockRegistrationRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.regs)
}

type mockEmailService struct {
	mu   sync.Mutex
	sent []*domain.RegistrationConfirmationEmailData
	err  error
}

func (m *mockEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, data)
	return nil
}

type mockCodeEncoder struct {
	lastPayload string
	err         error
}

func (m *mockCodeEncoder) Encode(payload string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastPayload = payload
	return []byte("png:" + payload), nil
}

type mockMetrics struct {
	mu         sync.Mutex
	registered int
	checkedIn  int
	rejected   map[string]int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{rejected: make(map[string]int)}
}

func (m *mockMetrics) RegistrationCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registered++
}

func (m *mockMetrics) TicketCheckedIn() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checkedIn++
}

func (m *mockMetrics) TicketRejected(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected[reason]++
}
