package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akinalp/djchat/models"
	"github.com/akinalp/djchat/pkg"
	"github.com/akinalp/djchat/pkg/ratelimit"
	"github.com/akinalp/djchat/services"
)

type stubServerService struct {
	gotParams models.ServerListParams
	gotViewer *models.User
	servers   []models.Server
	err       error
}

func (s *stubServerService) List(_ context.Context, params models.ServerListParams, viewer *models.User) ([]models.Server, error) {
	s.gotParams = params
	s.gotViewer = viewer
	return s.servers, s.err
}

type stubAuthService struct {
	services.AuthService
	loginErr error
}

func (s *stubAuthService) Login(_ context.Context, req *models.LoginRequest) (*services.AuthTokens, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &services.AuthTokens{AccessToken: "tok", User: models.User{ID: "user-1", Username: req.Username}}, nil
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestServerHandler_List(t *testing.T) {
	t.Parallel()

	t.Run("passes params and viewer", func(t *testing.T) {
		t.Parallel()
		n := 2
		svc := &stubServerService{servers: []models.Server{{
			ID: 1, Name: "A", OwnerID: "user-1", Category: "Gaming",
			Members: []string{"user-1", "user-2"}, NumMembers: &n, CreatedAt: time.Unix(0, 0).UTC(),
		}}}
		h := NewServerHandler(svc)

		viewer := &models.User{ID: "user-1"}
		req := httptest.NewRequest(http.MethodGet, "/api/server/select?category=Gaming&by_user=true&with_num_members=true&qty=1", nil)
		req = req.WithContext(context.WithValue(req.Context(), UserContextKey, viewer))
		rec := httptest.NewRecorder()
		h.List(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Gaming", svc.gotParams.Category)
		assert.True(t, svc.gotParams.ByUser.On())
		assert.True(t, svc.gotParams.WithNumMembers.On())
		assert.Equal(t, "1", svc.gotParams.Qty)
		assert.Same(t, viewer, svc.gotViewer)

		body := decode(t, rec)
		data := body["data"].([]any)
		require.Len(t, data, 1)
		server := data[0].(map[string]any)
		assert.Equal(t, "A", server["name"])
		assert.Equal(t, "user-1", server["owner"])
		assert.Equal(t, "Gaming", server["category"])
		assert.EqualValues(t, 2, server["num_members"])
		assert.Len(t, server["member"], 2)
	})

	t.Run("anonymous viewer is nil", func(t *testing.T) {
		t.Parallel()
		svc := &stubServerService{servers: []models.Server{}}
		rec := httptest.NewRecorder()
		NewServerHandler(svc).List(rec, httptest.NewRequest(http.MethodGet, "/api/server/select", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, svc.gotViewer)
		assert.Equal(t, []any{}, decode(t, rec)["data"])
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{name: "validation error", err: pkg.NewValidationError("Server with id 999 not found"), wantStatus: http.StatusBadRequest, wantDetail: "Server with id 999 not found"},
		{name: "auth required", err: services.ErrAuthenticationRequired, wantStatus: http.StatusUnauthorized},
		{name: "internal", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			NewServerHandler(&stubServerService{err: tt.err}).List(rec, httptest.NewRequest(http.MethodGet, "/api/server/select", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, body["detail"])
			}
		})
	}
}

func TestAuthHandler_Login_RateLimited(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.NewLoginRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Stop)
	h := NewAuthHandler(&stubAuthService{loginErr: pkg.ErrUnauthorized}, limiter)

	login := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"alice","password":"nope"}`))
		req.RemoteAddr = "10.1.1.1:4000"
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, login().Code)
	assert.Equal(t, http.StatusUnauthorized, login().Code)

	rec := login()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestAuthHandler_Login_SuccessResetsLimiter(t *testing.T) {
	t.Parallel()

	limiter := ratelimit.NewLoginRateLimiter(1, time.Minute)
	t.Cleanup(limiter.Stop)
	h := NewAuthHandler(&stubAuthService{}, limiter)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"alice","password":"password123"}`))
		req.RemoteAddr = "10.2.2.2:4000"
		rec := httptest.NewRecorder()
		h.Login(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "attempt %d", i+1)
	}
}

func TestAuthHandler_BadBody(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&stubAuthService{}, nil)
	rec := httptest.NewRecorder()
	h.Register(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&stubAuthService{}, nil)

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/users/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), UserContextKey, &models.User{ID: "user-1", Username: "alice"}))
	rec = httptest.NewRecorder()
	h.Me(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", decode(t, rec)["data"].(map[string]any)["username"])
}
