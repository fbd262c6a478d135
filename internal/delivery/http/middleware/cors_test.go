package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	tests := []struct {
		name       string
		origins    []string
		method     string
		origin     string
		preflight  bool
		wantStatus int
		wantAllow  string
	}{
		{name: "allowed origin", origins: []string{"http://localhost:3000/"}, method: http.MethodGet, origin: "http://localhost:3000", wantStatus: http.StatusOK, wantAllow: "http://localhost:3000"},
		{name: "disallowed origin", origins: []string{"http://localhost:3000"}, method: http.MethodGet, origin: "http://evil.test", wantStatus: http.StatusOK},
		{name: "wildcard echoes origin", origins: []string{"*"}, method: http.MethodGet, origin: "http://any.test", wantStatus: http.StatusOK, wantAllow: "http://any.test"},
		{name: "preflight allowed", origins: []string{"http://localhost:3000"}, method: http.MethodOptions, origin: "http://localhost:3000", preflight: true, wantStatus: http.StatusNoContent, wantAllow: "http://localhost:3000"},
		{name: "preflight disallowed", origins: []string{"http://localhost:3000"}, method: http.MethodOptions, origin: "http://evil.test", preflight: true, wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/events", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rr := httptest.NewRecorder()

			CORS(tt.origins, ok).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantAllow != "" {
				assert.Equal(t, "X-Total-Count", rr.Header().Get("Access-Control-Expose-Headers"))
			}
			if tt.preflight && tt.wantAllow != "" {
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
			}
		})
	}
}
