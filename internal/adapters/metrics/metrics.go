package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "devevents"

// Metrics owns the Prometheus registry for the API process. It implements
// domain.RegistrationMetrics and records HTTP request metrics for the middleware.
type Metrics struct {
	registry *prometheus.Registry

	registrations   prometheus.Counter
	checkIns        prometheus.Counter
	rejectedTickets *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry, along with the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		registrations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registrations_total",
			Help:      "Registrations created.",
		}),
		checkIns: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticket_checkins_total",
			Help:      "Tickets checked in at the door.",
		}),
		rejectedTickets: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticket_rejections_total",
			Help:      "Ticket verifications that were refused, by reason.",
		}, []string{"reason"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern, method and status code.",
		}, []string{"route", "method", "code"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
}

func (m *Metrics) RegistrationCreated() { m.registrations.Inc() }

func (m *Metrics) TicketCheckedIn() { m.checkIns.Inc() }

func (m *Metrics) TicketRejected(reason string) {
	m.rejectedTickets.WithLabelValues(reason).Inc()
}

// ObserveRequest records one served request. route should be the mux pattern,
// not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	method = methodLabel(method)
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// methodLabel folds non-standard methods into "other"; the method comes from the client.
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodConnect, http.MethodOptions, http.MethodTrace:
		return method
	}
	return "other"
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
