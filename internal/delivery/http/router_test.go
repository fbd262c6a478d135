package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"devevents/internal/delivery/http/controllers"
	"devevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

const ticketID = "7c9e6679-7425-40de-944b-e07fc1f90ae7"

type staticVerifier struct{}

// Verify accepts tokens of the form "user:<id>".
func (staticVerifier) Verify(token string) (string, error) {
	if len(token) > 5 && token[:5] == "user:" {
		return token[5:], nil
	}
	return "", domain.ErrUnauthenticated
}

type stubEvents struct{}

func (stubEvents) Create(ctx context.Context, in domain.CreateEventInput, creatorID string) (*domain.Event, error) {
	return &domain.Event{ID: "e1", Slug: in.Slug, CreatedBy: creatorID}, nil
}

func (stubEvents) ListAll(ctx context.Context, params domain.PaginationParams) ([]*domain.Event, int, error) {
	return []*domain.Event{{ID: "e1", Slug: "go-conf"}}, 1, nil
}

func (stubEvents) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if slug == "go-conf" {
		return &domain.Event{ID: "e1", Slug: slug}, nil
	}
	return nil, domain.ErrNotFound
}

type stubRegistrations struct {
	lastStatusUser string
}

func (s *stubRegistrations) Register(ctx context.Context, eventID, userID, email, name string) (*domain.Registration, error) {
	return &domain.Registration{ID: ticketID, EventID: eventID, UserID: userID}, nil
}

func (s *stubRegistrations) CheckStatus(ctx context.Context, eventID, userID string) (bool, error) {
	s.lastStatusUser = userID
	return userID != "", nil
}

func (s *stubRegistrations) ListForUser(ctx context.Context, userID string) ([]*domain.RegistrationWithEvent, error) {
	return []*domain.RegistrationWithEvent{}, nil
}

func (s *stubRegistrations) GetTicket(ctx context.Context, id, userID string) (*domain.RegistrationWithEvent, error) {
	if userID != "owner" {
		return nil, domain.ErrForbidden
	}
	return &domain.RegistrationWithEvent{Registration: &domain.Registration{ID: id}}, nil
}

func (s *stubRegistrations) GetTicketCode(ctx context.Context, id, userID string) ([]byte, error) {
	return []byte("png"), nil
}

func (s *stubRegistrations) VerifyTicket(ctx context.Context, id, verifierID string) (*domain.RegistrationWithEvent, error) {
	return nil, domain.ErrAlreadyCheckedIn
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type fakeMetrics struct{ observed int }

func (m *fakeMetrics) ObserveRequest(string, string, int, time.Duration) { m.observed++ }

func (m *fakeMetrics) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})
}

func newTestRouter(db Pinger) (http.Handler, *stubRegistrations, *fakeMetrics) {
	regs := &stubRegistrations{}
	metrics := &fakeMetrics{}
	return NewRouter(RouterConfig{
		Logger:                 testLogger,
		Verifier:               staticVerifier{},
		EventController:        controllers.NewEventController(testLogger, stubEvents{}),
		RegistrationController: controllers.NewRegistrationController(testLogger, regs),
		DB:                     db,
		Metrics:                metrics,
		AllowedOrigins:         []string{"http://localhost:3000"},
	}), regs, metrics
}

func TestRouter_Routes(t *testing.T) {
	router, _, _ := newTestRouter(fakePinger{})
	eventBody := `{"title":"t","image":"https://x.test/i.png","slug":"go-conf","location":"l","date":"d","time":"t","address":"a","organizer":"o","description":"d"}`
	regBody := `{"eventId":"0f8fad5b-d9cb-469f-a165-70867728950e","userEmail":"a@example.com","userName":"A"}`

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      string
		wantStatus int
	}{
		{"list events", http.MethodGet, "/api/events", "", "", http.StatusOK},
		{"list events legacy path", http.MethodGet, "/api/events/getevents", "", "", http.StatusOK},
		{"get event", http.MethodGet, "/api/events/go-conf", "", "", http.StatusOK},
		{"get missing event", http.MethodGet, "/api/events/nope", "", "", http.StatusNotFound},
		{"create event needs auth", http.MethodPost, "/api/events", eventBody, "", http.StatusUnauthorized},
		{"create event", http.MethodPost, "/api/events", eventBody, "user:org", http.StatusCreated},
		{"create event legacy path", http.MethodPost, "/api/events/createevent", eventBody, "user:org", http.StatusCreated},
		{"register needs auth", http.MethodPost, "/api/registrations", regBody, "bad", http.StatusUnauthorized},
		{"register", http.MethodPost, "/api/registrations", regBody, "user:u1", http.StatusCreated},
		{"register legacy path", http.MethodPost, "/api/registrations/register", regBody, "user:u1", http.StatusCreated},
		{"status anonymous", http.MethodGet, "/api/registrations/status/0f8fad5b-d9cb-469f-a165-70867728950e", "", "", http.StatusOK},
		{"my events", http.MethodGet, "/api/registrations/my-events", "", "user:u1", http.StatusOK},
		{"my events needs auth", http.MethodGet, "/api/registrations/my-events", "", "", http.StatusUnauthorized},
		{"ticket owner", http.MethodGet, "/api/registrations/ticket/" + ticketID, "", "user:owner", http.StatusOK},
		{"ticket other user", http.MethodGet, "/api/registrations/ticket/" + ticketID, "", "user:other", http.StatusForbidden},
		{"ticket qr", http.MethodGet, "/api/registrations/ticket/" + ticketID + "/qr", "", "user:owner", http.StatusOK},
		{"verify replay", http.MethodPost, "/api/registrations/verify", `{"ticketId":"` + ticketID + `"}`, "user:org", http.StatusBadRequest},
		{"healthz", http.MethodGet, "/healthz", "", "", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", "", "", http.StatusOK},
		{"wrong method", http.MethodDelete, "/api/events", "", "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body io.Reader
			if tt.body != "" {
				body = bytes.NewBufferString(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
		})
	}
}

func TestRouter_StatusUsesOptionalIdentity(t *testing.T) {
	router, regs, _ := newTestRouter(nil)
	req := httptest.NewRequest(http.MethodGet, "/api/registrations/status/0f8fad5b-d9cb-469f-a165-70867728950e", nil)
	req.Header.Set("Authorization", "Bearer user:u9")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "u9", regs.lastStatusUser)
	assert.Contains(t, rr.Body.String(), `"isRegistered":true`)
}

func TestRouter_HealthzReportsDatabaseDown(t *testing.T) {
	router, _, _ := newTestRouter(fakePinger{err: errors.New("connection refused")})
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection refused")
}

func TestRouter_MiddlewareChain(t *testing.T) {
	router, _, metrics := newTestRouter(fakePinger{})
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "1", rr.Header().Get("X-Total-Count"))
	assert.Equal(t, 1, metrics.observed)
}
