package middleware

import (
	"net/http"
	"time"
)

// RequestObserver records one served HTTP request.
type RequestObserver interface {
	ObserveRequest(route, method string, status int, elapsed time.Duration)
}

// MetricsMiddleware reports every request to obs, labelled with the mux route
// pattern that served it.
func MetricsMiddleware(obs RequestObserver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := wrapResponseWriter(w)
		next.ServeHTTP(wrapped, r)
		obs.ObserveRequest(r.Pattern, r.Method, wrapped.status, time.Since(start))
	})
}
