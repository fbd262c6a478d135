package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"devevents/internal/delivery/http/controllers"
	"devevents/internal/delivery/http/helpers"
	"devevents/internal/delivery/http/middleware"
	"devevents/internal/domain"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// MetricsProvider observes requests and exposes the collected metrics.
type MetricsProvider interface {
	middleware.RequestObserver
	Handler() http.Handler
}

// RouterConfig carries everything the router wires together.
type RouterConfig struct {
	Logger                 *slog.Logger
	Verifier               domain.TokenVerifier
	EventController        *controllers.EventController
	RegistrationController *controllers.RegistrationController
	DB                     Pinger
	Metrics                MetricsProvider
	AllowedOrigins         []string
}

// NewRouter initializes the HTTP router with all application routes and wraps it
// in the middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(cfg.Verifier, cfg.Logger)
	optionalAuth := middleware.OptionalAuth(cfg.Verifier, cfg.Logger)
	ev := cfg.EventController
	reg := cfg.RegistrationController

	// Events
	mux.HandleFunc("POST /api/events", auth(ev.CreateEvent))
	mux.HandleFunc("GET /api/events", ev.ListEvents)
	mux.HandleFunc("GET /api/events/{slug}", ev.GetEventBySlug)
	// Paths used by the original web client.
	mux.HandleFunc("POST /api/events/createevent", auth(ev.CreateEvent))
	mux.HandleFunc("GET /api/events/getevents", ev.ListEvents)

	// Registrations
	mux.HandleFunc("POST /api/registrations", auth(reg.Register))
	mux.HandleFunc("POST /api/registrations/register", auth(reg.Register))
	mux.HandleFunc("GET /api/registrations/status/{eventId}", optionalAuth(reg.CheckStatus))
	mux.HandleFunc("GET /api/registrations/my-events", auth(reg.MyEvents))
	mux.HandleFunc("GET /api/registrations/ticket/{id}", auth(reg.GetTicket))
	mux.HandleFunc("GET /api/registrations/ticket/{id}/qr", auth(reg.GetTicketQR))
	mux.HandleFunc("POST /api/registrations/verify", auth(reg.VerifyTicket))

	// Ops
	mux.HandleFunc("GET /healthz", healthz(cfg.DB, cfg.Logger))
	if cfg.Metrics != nil {
		mux.Handle("GET /metrics", cfg.Metrics.Handler())
	}

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = middleware.CORS(cfg.AllowedOrigins, mux)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	if cfg.Metrics != nil {
		handler = middleware.MetricsMiddleware(cfg.Metrics, handler)
	}
	return middleware.Recoverer(cfg.Logger, handler)
}

type healthResponse struct {
	Status string `json:"status"`
}

// healthz reports 200 while the database answers pings.
func healthz(db Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				logger.WarnContext(r.Context(), "health check failed", "err", err)
				helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeInternalError, "database unavailable")
				return
			}
		}
		helpers.WriteJSONSuccess(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
