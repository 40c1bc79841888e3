package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"places-api/config"
	"places-api/pkg/logger"
)

func newTestServer(health HealthFunc) *Server {
	s := New(&config.Config{AppPort: "0", AppMode: TestMode}, logger.NewNop())
	s.SetupRoutes(&Handlers{}, nil, health)
	return s
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		health HealthFunc
		status int
		body   string
	}{
		{name: "no store attached", health: nil, status: http.StatusOK, body: `"healthy"`},
		{name: "store up", health: func(context.Context) error { return nil }, status: http.StatusOK, body: `"healthy"`},
		{name: "store down", health: func(context.Context) error { return errors.New("no primary") }, status: http.StatusServiceUnavailable, body: `"Store unavailable."`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(tt.health)

			rec := httptest.NewRecorder()
			s.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if !strings.Contains(rec.Body.String(), tt.body) {
				t.Errorf("body = %s, want it to contain %s", rec.Body.String(), tt.body)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(nil)

	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	rec = httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "http_requests_total") {
		t.Error("metrics output should include http_requests_total")
	}
}
