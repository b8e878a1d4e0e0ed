package wire

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/localstore"
	"tourism-booking/internal/notify"
	"tourism-booking/internal/subscription"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/cache"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newUnconfiguredApp wires the full router with no database behind it
func newUnconfiguredApp(t *testing.T) *App {
	t.Helper()
	log := zap.NewNop()
	kv, err := localstore.NewFileKV(t.TempDir())
	require.NoError(t, err)

	now := func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) }
	hub := subscription.NewHub(log)
	repo := repository.NewRepository(database.Unconfigured(), log)
	infra := usecase.Infra{
		Cache:   cache.NopCache{},
		Local:   localstore.New(kv, log, now),
		Changes: hub,
		Events:  notify.NewNotifier(notify.NewLogPublisher(log), "tourism.notifications", log),
		Now:     now,
	}
	config := &utils.Config{App: utils.AppConfig{CORSOrigins: []string{"*"}}}
	return Wiring(repo, infra, hub, config, log)
}

func serve(app *App, method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)
	return w
}

func TestRouter_WithoutBackend(t *testing.T) {
	app := newUnconfiguredApp(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		token  string
		code   int
		want   string
	}{
		{name: "health", method: http.MethodGet, path: "/health", code: http.StatusOK, want: "OK"},
		{name: "tours fall back to seed", method: http.MethodGet, path: "/api/tours?season=Summer", code: http.StatusOK, want: `"using_fallback":true`},
		{name: "quote from seed", method: http.MethodPost, path: "/api/tours/1/quote", body: `{"participants":2}`, code: http.StatusOK, want: `"participants":2`},
		{name: "content defaults", method: http.MethodGet, path: "/api/content", code: http.StatusOK, want: "Discover Kyrgyzstan"},
		{name: "booking needs token", method: http.MethodPost, path: "/api/bookings", body: `{}`, code: http.StatusUnauthorized},
		{name: "sessions unavailable", method: http.MethodGet, path: "/api/user/bookings", token: "abc", code: http.StatusServiceUnavailable},
		{name: "admin needs token", method: http.MethodGet, path: "/api/admin/bookings", code: http.StatusUnauthorized},
		{name: "feedback list unavailable", method: http.MethodGet, path: "/api/feedback", code: http.StatusServiceUnavailable},
		{name: "admin login bad creds", method: http.MethodPost, path: "/api/admin/login", body: `{"username":"x","password":"y"}`, code: http.StatusUnauthorized},
		{
			name: "seller submission kept locally", method: http.MethodPost, path: "/api/seller/submissions",
			body: `{"title":"Yurt camp","description":"Two nights by Song-Kul","contactName":"Nurlan","contactEmail":"nurlan@example.com"}`,
			code: http.StatusCreated, want: `"status":"pending"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(app, tt.method, tt.path, tt.body, tt.token)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
			if tt.want != "" {
				assert.Contains(t, w.Body.String(), tt.want)
			}
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	app := newUnconfiguredApp(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/bookings", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, []string{"*", "http://localhost:5173"}, w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRouter_OptionsWithoutPreflightIsRouted(t *testing.T) {
	app := newUnconfiguredApp(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/tours", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	app.Router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestFetchers_ReportBackendErrors(t *testing.T) {
	hub := subscription.NewHub(zap.NewNop())
	registerFetchers(hub, repository.NewRepository(database.Unconfigured(), zap.NewNop()))

	for _, c := range []subscription.Collection{subscription.Bookings, subscription.CustomRequests, subscription.Submissions, subscription.Feedback} {
		ch, cancel, err := hub.Subscribe(context.Background(), "test", c, subscription.Filter{OwnerID: "u1"})
		require.NoError(t, err)

		select {
		case ev := <-ch:
			assert.ErrorIs(t, ev.Err, database.ErrNotConfigured, string(c))
		case <-time.After(2 * time.Second):
			t.Fatalf("no snapshot for %s", c)
		}
		cancel()
	}
}
