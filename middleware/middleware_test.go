package middleware

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/ipgate/models"
	"github.com/blogem/ipgate/repositories"
	"github.com/blogem/ipgate/services"
	"github.com/blogem/ipgate/userctx"
)

func TestClientIP(t *testing.T) {
	cases := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{"remote addr", "203.0.113.5:4321", nil, false, "203.0.113.5"},
		{"mapped ipv6", "[::ffff:10.0.0.1]:4321", nil, false, "10.0.0.1"},
		{"plain ipv6", "[2001:db8::1]:80", nil, false, "2001:db8::1"},
		{"untrusted forwarded header", "203.0.113.5:4321", map[string]string{"X-Forwarded-For": "10.0.0.1"}, false, "203.0.113.5"},
		{"trusted forwarded header", "203.0.113.5:4321", map[string]string{"X-Forwarded-For": "10.0.0.1, 172.16.0.1"}, true, "10.0.0.1"},
		{"trusted real ip", "203.0.113.5:4321", map[string]string{"X-Real-IP": "10.0.0.2"}, true, "10.0.0.2"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			handler := ClientIP(tc.trustProxy)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = userctx.GetClientIP(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			assert.Equal(t, tc.want, got)
		})
	}
}

type failingWhitelist struct {
	repositories.WhitelistRepository
}

func (failingWhitelist) IsWhitelisted(ctx context.Context, ip string) (bool, error) {
	return false, repositories.ErrStoreUnavailable
}

func TestRequireWhitelistedIP(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	whitelist := repositories.NewMemoryWhitelistRepository()
	accessLog := repositories.NewMemoryAccessLogRepository(nil)
	require.NoError(t, whitelist.Create(ctx, &models.WhitelistEntry{IPAddress: "10.0.0.2", Description: "office", IsActive: true}))

	newRouter := func(gate services.AccessGate) http.Handler {
		r := chi.NewRouter()
		r.Use(ClientIP(false))
		r.With(RequireWhitelistedIP(gate, logger)).Get("/files/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		return r
	}
	router := newRouter(services.NewAccessGate(whitelist, accessLog, logger))

	t.Run("allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/files/5", nil)
		req.RemoteAddr = "10.0.0.2:1000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("denied", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/files/5", nil)
		req.RemoteAddr = "[::ffff:203.0.113.5]:1000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "203.0.113.5", body["ipAddress"])

		logs, err := accessLog.List(ctx, models.AccessLogFilter{Status: models.StatusDenied})
		require.NoError(t, err)
		require.Len(t, logs, 1)
		require.NotNil(t, logs[0].FileID)
		assert.Equal(t, int64(5), *logs[0].FileID)
	})

	t.Run("store failure", func(t *testing.T) {
		failing := newRouter(services.NewAccessGate(failingWhitelist{}, accessLog, logger))
		req := httptest.NewRequest(http.MethodGet, "/files/5", nil)
		req.RemoteAddr = "10.0.0.2:1000"
		rec := httptest.NewRecorder()
		failing.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRateLimit(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	handler := ClientIP(false)(RateLimit(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	do := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1:2"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:3"))
	assert.Equal(t, http.StatusOK, do("10.0.0.9:1"), "other clients keep their own budget")
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for role, want := range map[models.Role]int{models.RoleAdmin: http.StatusOK, models.RoleUser: http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(userctx.SetUser(req.Context(), &userctx.SessionUser{ID: 1, Username: "x", Role: role}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, "role %s", role)
	}
}

type userLookupFunc func(ctx context.Context, id int64) (*models.User, error)

func (f userLookupFunc) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return f(ctx, id)
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	stored := &models.User{ID: 7, Username: "renamed", Role: models.RoleUser}
	var lookupErr error

	sessions, err := session.Sessioner(session.Options{Provider: "memory", CookieName: "test_session", Gclifetime: 60, Maxlifetime: 60})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(sessions)
	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		SignIn(r, &models.User{ID: 7, Username: "original", Role: models.RoleAdmin})
		w.WriteHeader(http.StatusNoContent)
	})
	lookup := userLookupFunc(func(ctx context.Context, id int64) (*models.User, error) {
		if lookupErr != nil {
			return nil, lookupErr
		}
		return stored, nil
	})
	r.With(RequireAuth(lookup, logger)).Get("/me", func(w http.ResponseWriter, r *http.Request) {
		user, _ := userctx.GetUser(r.Context())
		writeJSON(w, http.StatusOK, user)
	})

	server := httptest.NewServer(r)
	defer server.Close()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	get := func() *http.Response {
		resp, err := client.Get(server.URL + "/me")
		require.NoError(t, err)
		t.Cleanup(func() { resp.Body.Close() })
		return resp
	}

	assert.Equal(t, http.StatusUnauthorized, get().StatusCode)

	resp, err := client.Post(server.URL+"/login", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()

	t.Run("stored account wins over session values", func(t *testing.T) {
		resp := get()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var user userctx.SessionUser
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
		assert.Equal(t, "renamed", user.Username)
		assert.Equal(t, models.RoleUser, user.Role)
	})

	t.Run("store failure", func(t *testing.T) {
		lookupErr = repositories.ErrStoreUnavailable
		assert.Equal(t, http.StatusInternalServerError, get().StatusCode)
	})

	t.Run("deleted account", func(t *testing.T) {
		lookupErr = repositories.ErrNotFound
		assert.Equal(t, http.StatusUnauthorized, get().StatusCode)

		// The session was flushed, so a restored account still needs a new login
		lookupErr = nil
		assert.Equal(t, http.StatusUnauthorized, get().StatusCode)
	})
}
