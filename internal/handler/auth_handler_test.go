package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"places-api/internal/ratelimit"
	"places-api/internal/transport/httpdto"

	"golang.org/x/crypto/bcrypt"
)

func signupBody(email string) map[string]any {
	return map[string]any{
		"name":     "Matthew Nguyen",
		"email":    email,
		"password": "testers",
		"places":   "3",
	}
}

// ===================================================================================================
// Signup
// ===================================================================================================

func TestSignup(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/users/signup", signupBody("test@test.com"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	got := decode[httpdto.UserResponse](t, rec).User
	if got.ID == "" || got.Email != "test@test.com" || got.Name != "Matthew Nguyen" || got.Places != "3" {
		t.Errorf("unexpected user %+v", got)
	}
	if got.Image != testImage {
		t.Errorf("image = %q, want placeholder", got.Image)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Errorf("response leaks password field: %s", rec.Body.String())
	}

	stored, err := env.users.GetByEmail(context.Background(), "test@test.com")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Password == "testers" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("testers")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestSignup_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing name", mutate: func(b map[string]any) { delete(b, "name") }},
		{name: "bad email", mutate: func(b map[string]any) { b["email"] = "not-an-email" }},
		{name: "short password", mutate: func(b map[string]any) { b["password"] = "12345" }},
		{name: "missing places", mutate: func(b map[string]any) { delete(b, "places") }},
		// 40 runes, 80 bytes: over bcrypt's limit
		{name: "multibyte password over 72 bytes", mutate: func(b map[string]any) { b["password"] = strings.Repeat("é", 40) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			body := signupBody("test@test.com")
			tt.mutate(body)

			rec := env.do(t, http.MethodPost, "/api/users/signup", body)
			expectError(t, rec, http.StatusUnprocessableEntity, "Invalid inputs passed, please check your data.")
		})
	}
}

func TestSignup_MultibytePasswordWithinLimit(t *testing.T) {
	env := newTestEnv(t)
	body := signupBody("test@test.com")
	body["password"] = strings.Repeat("é", 36)

	rec := env.do(t, http.MethodPost, "/api/users/signup", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodPost, "/api/users/login", map[string]any{"email": "test@test.com", "password": strings.Repeat("é", 36)})
	expectError(t, rec, http.StatusOK, "Logged in!")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	env := newTestEnv(t)

	if rec := env.do(t, http.MethodPost, "/api/users/signup", signupBody("test@test.com")); rec.Code != http.StatusCreated {
		t.Fatalf("first signup status = %d", rec.Code)
	}

	rec := env.do(t, http.MethodPost, "/api/users/signup", signupBody("TEST@test.com"))
	expectError(t, rec, http.StatusUnprocessableEntity, "User exists already, please login instead.")

	if n := env.users.countEmail("test@test.com"); n != 1 {
		t.Errorf("%d users with the email, want 1", n)
	}
}

func TestSignup_StoreFailures(t *testing.T) {
	t.Run("lookup", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.findErr = errStoreDown

		rec := env.do(t, http.MethodPost, "/api/users/signup", signupBody("a@b.com"))
		expectError(t, rec, http.StatusInternalServerError, "Signing up failed, please try again later.")
	})

	t.Run("save", func(t *testing.T) {
		env := newTestEnv(t)
		env.users.createErr = errStoreDown

		rec := env.do(t, http.MethodPost, "/api/users/signup", signupBody("a@b.com"))
		expectError(t, rec, http.StatusInternalServerError, "Signing up failed at saving, please try again later.")
	})
}

// Every request passes the existence check before any insert happens; the
// store's uniqueness rule has to pick the single winner.
func TestSignup_ConcurrentSameEmail(t *testing.T) {
	const n = 8
	env := newTestEnv(t)

	var lookups sync.WaitGroup
	lookups.Add(n)
	env.users.lookups = &lookups

	codes := make(chan int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := env.do(t, http.MethodPost, "/api/users/signup", signupBody("race@test.com"))
			codes <- rec.Code
		}()
	}
	wg.Wait()
	close(codes)

	created, conflicts := 0, 0
	for code := range codes {
		switch code {
		case http.StatusCreated:
			created++
		case http.StatusUnprocessableEntity:
			conflicts++
		default:
			t.Errorf("unexpected status %d", code)
		}
	}

	if created != 1 || conflicts != n-1 {
		t.Errorf("created = %d, conflicts = %d; want 1 and %d", created, conflicts, n-1)
	}
	if got := env.users.countEmail("race@test.com"); got != 1 {
		t.Errorf("%d users stored with the email, want 1", got)
	}
}

// ===================================================================================================
// Login
// ===================================================================================================

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	if rec := env.do(t, http.MethodPost, "/api/users/signup", signupBody("test@test.com")); rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d", rec.Code)
	}

	tests := []struct {
		name     string
		email    string
		password string
		status   int
		message  string
	}{
		{name: "correct credentials", email: "test@test.com", password: "testers", status: http.StatusOK, message: "Logged in!"},
		{name: "wrong password", email: "test@test.com", password: "testerz", status: http.StatusUnauthorized, message: "Invalid credentials, could not log you in."},
		{name: "unknown email", email: "nobody@test.com", password: "testers", status: http.StatusUnauthorized, message: "Invalid credentials, could not log you in."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/users/login", map[string]any{
				"email":    tt.email,
				"password": tt.password,
			})
			expectError(t, rec, tt.status, tt.message)
		})
	}
}

func TestLogin_IssuesNoToken(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodPost, "/api/users/signup", signupBody("test@test.com"))

	rec := env.do(t, http.MethodPost, "/api/users/login", map[string]any{"email": "test@test.com", "password": "testers"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	body := decode[map[string]any](t, rec)
	if len(body) != 1 || body["message"] != "Logged in!" {
		t.Errorf("body = %v, want only the message", body)
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Errorf("login set cookies: %v", cookies)
	}
	if rec.Header().Get("Authorization") != "" {
		t.Error("login set an Authorization header")
	}
}

func TestLogin_StoreFailure(t *testing.T) {
	env := newTestEnv(t)
	env.users.findErr = errStoreDown

	rec := env.do(t, http.MethodPost, "/api/users/login", map[string]any{"email": "a@b.com", "password": "secret"})
	expectError(t, rec, http.StatusInternalServerError, "Logging in failed, please try again later.")
}

// ===================================================================================================
// Rate limiting
// ===================================================================================================

type fakeLimiter struct {
	mu      sync.Mutex
	allowed int
	calls   int
	err     error
}

func (l *fakeLimiter) AllowAuth(_ context.Context, _ string) (*ratelimit.Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	l.calls++
	remaining := l.allowed - l.calls
	if remaining < 0 {
		remaining = 0
	}
	return &ratelimit.Result{
		Allowed:   l.calls <= l.allowed,
		Remaining: remaining,
		ResetIn:   30 * time.Second,
		Limit:     l.allowed,
	}, nil
}

func TestAuthRateLimit(t *testing.T) {
	limiter := &fakeLimiter{allowed: 2}
	env := newTestEnvWithLimiter(t, limiter)
	creds := map[string]any{"email": "nobody@test.com", "password": "secret"}

	for i := 0; i < 2; i++ {
		rec := env.do(t, http.MethodPost, "/api/users/login", creds)
		expectError(t, rec, http.StatusUnauthorized, "Invalid credentials, could not log you in.")
	}

	rec := env.do(t, http.MethodPost, "/api/users/signup", signupBody("a@test.com"))
	expectError(t, rec, http.StatusTooManyRequests, "Too many requests, please try again later.")
	if got := rec.Header().Get("X-RateLimit-Limit"); got != "2" {
		t.Errorf("X-RateLimit-Limit = %q, want 2", got)
	}
	if got := rec.Header().Get("X-RateLimit-Remaining"); got != "0" {
		t.Errorf("X-RateLimit-Remaining = %q, want 0", got)
	}
	if got := rec.Header().Get("X-RateLimit-Reset"); got != "30" {
		t.Errorf("X-RateLimit-Reset = %q, want 30", got)
	}
	if n := env.users.countEmail("a@test.com"); n != 0 {
		t.Errorf("rejected signup stored %d users", n)
	}

	// Other routes are not limited.
	if rec := env.do(t, http.MethodGet, "/api/users", nil); rec.Code != http.StatusOK {
		t.Errorf("GET /api/users status = %d, want 200", rec.Code)
	}
}

func TestAuthRateLimit_LimiterFailure(t *testing.T) {
	env := newTestEnvWithLimiter(t, &fakeLimiter{err: errStoreDown})

	rec := env.do(t, http.MethodPost, "/api/users/login", map[string]any{"email": "a@b.com", "password": "secret"})
	expectError(t, rec, http.StatusInternalServerError, "Something went wrong, please try again later.")
}

func TestAuthRateLimit_IgnoresForwardedFor(t *testing.T) {
	env := newTestEnvWithLimiter(t, ratelimit.NewLocalLimiter(2, time.Minute))

	allowed := 0
	for i := 0; i < 20; i++ {
		body, _ := json.Marshal(map[string]any{"email": "nobody@test.com", "password": "secret"})
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Forwarded-For", fmt.Sprintf("203.0.113.%d", i))
		req.Header.Set("X-Real-IP", fmt.Sprintf("198.51.100.%d", i))
		req.RemoteAddr = "192.0.2.10:40000"

		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		if rec.Code != http.StatusTooManyRequests {
			allowed++
		}
	}

	if allowed != 2 {
		t.Errorf("allowed %d of 20 requests from one peer with limit 2", allowed)
	}
}
