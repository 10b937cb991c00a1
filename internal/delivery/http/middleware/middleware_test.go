package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"storefront-backend/config"
	"storefront-backend/internal/domain"
	"storefront-backend/pkg/utils"
)

func testConfig() *config.Config {
	return &config.Config{
		UserIDHeader:      "X-User-ID",
		TrustUserIDHeader: true,
		AllowedOrigin:     "http://localhost:3000, https://shop.example",
	}
}

// captureUser records the identity the handler saw.
func captureUser(got **domain.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, ok := domain.UserFromContext(r.Context()); ok {
			*got = u
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestIdentityMiddleware(t *testing.T) {
	utils.SetSecret("test-secret")
	adminToken, err := utils.GenerateJWT("admin-1", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name     string
		trust    bool
		setup    func(r *http.Request)
		wantID   string
		wantRole string
	}{
		{
			name:   "header identity",
			trust:  true,
			setup:  func(r *http.Request) { r.Header.Set("X-User-ID", " user-7 ") },
			wantID: "user-7",
		},
		{
			name:  "header ignored when untrusted",
			trust: false,
			setup: func(r *http.Request) { r.Header.Set("X-User-ID", "user-7") },
		},
		{
			name:  "token wins over header",
			trust: true,
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+adminToken)
				r.Header.Set("X-User-ID", "user-7")
			},
			wantID:   "admin-1",
			wantRole: domain.RoleAdmin,
		},
		{
			name:  "token from cookie",
			trust: true,
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "accessToken", Value: adminToken})
			},
			wantID:   "admin-1",
			wantRole: domain.RoleAdmin,
		},
		{
			name:  "invalid token falls back to header",
			trust: true,
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer garbage")
				r.Header.Set("X-User-ID", "user-7")
			},
			wantID: "user-7",
		},
		{
			name:  "nothing",
			trust: true,
			setup: func(r *http.Request) {},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.TrustUserIDHeader = tt.trust

			var got *domain.User
			h := NewIdentityMiddleware(cfg)(captureUser(&got))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNoContent, rec.Code, "identity middleware never rejects")
			if tt.wantID == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.wantRole, got.Role)
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := AdminMiddleware(next)

	tests := []struct {
		name string
		user *domain.User
		want int
	}{
		{name: "anonymous", user: nil, want: http.StatusUnauthorized},
		{name: "customer", user: &domain.User{ID: "u1"}, want: http.StatusForbidden},
		{name: "admin", user: &domain.User{ID: "a1", Role: domain.RoleAdmin}, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/content/faq", nil)
			if tt.user != nil {
				req = req.WithContext(domain.ContextWithUser(req.Context(), tt.user))
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestCORSMiddleware(t *testing.T) {
	h := NewCORSMiddleware(testConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/wishlist", nil)
	req.Header.Set("Origin", "https://shop.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://shop.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-User-ID")

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoverer(t *testing.T) {
	h := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("nil map write")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.NotContains(t, rec.Body.String(), "nil map")
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rl := NewRateLimiter(ctx, rate.Limit(1), 2, time.Minute, time.Minute)
	defer rl.Shutdown()

	h := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{200, 200, 429}, codes)

	// A different client has its own bucket.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, rec.Header().Get("X-Request-ID"), 8)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "upstream-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-42", rec.Header().Get("X-Request-ID"))
}
