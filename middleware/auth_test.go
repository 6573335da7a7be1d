package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akinalp/djchat/handlers"
	"github.com/akinalp/djchat/models"
	"github.com/akinalp/djchat/pkg"
	"github.com/akinalp/djchat/repository/mocks"
	"github.com/akinalp/djchat/services"
)

// stubAuthService, sadece "good" token'ını kabul eder.
type stubAuthService struct {
	services.AuthService
}

func (stubAuthService) ValidateAccessToken(token string) (*models.TokenClaims, error) {
	switch token {
	case "good":
		return &models.TokenClaims{UserID: "user-1", Username: "alice"}, nil
	case "orphan":
		return &models.TokenClaims{UserID: "deleted"}, nil
	default:
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}
}

// echoViewer, context'teki kullanıcının id'sini (yoksa "anonymous") yazar.
var echoViewer = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	if u := handlers.UserFromContext(r.Context()); u != nil {
		if u.PasswordHash != "" {
			_, _ = w.Write([]byte("password hash leaked"))
			return
		}
		_, _ = w.Write([]byte(u.ID))
		return
	}
	_, _ = w.Write([]byte("anonymous"))
})

func newTestMiddleware(t *testing.T) *AuthMiddleware {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)

	users.EXPECT().GetByID(gomock.Any(), "user-1").
		DoAndReturn(func(context.Context, string) (*models.User, error) {
			return &models.User{ID: "user-1", Username: "alice", PasswordHash: "secret-hash"}, nil
		}).AnyTimes()
	users.EXPECT().GetByID(gomock.Any(), "deleted").Return(nil, pkg.ErrNotFound).AnyTimes()

	return NewAuthMiddleware(stubAuthService{}, users)
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		header       string
		wantRequire  int
		wantOptional int
		wantBody     string
	}{
		{name: "no header", header: "", wantRequire: http.StatusUnauthorized, wantOptional: http.StatusOK, wantBody: "anonymous"},
		{name: "valid token", header: "Bearer good", wantRequire: http.StatusOK, wantOptional: http.StatusOK, wantBody: "user-1"},
		{name: "invalid token", header: "Bearer bad", wantRequire: http.StatusUnauthorized, wantOptional: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token good", wantRequire: http.StatusUnauthorized, wantOptional: http.StatusUnauthorized},
		{name: "user deleted", header: "Bearer orphan", wantRequire: http.StatusUnauthorized, wantOptional: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newTestMiddleware(t)

			for mode, h := range map[string]http.Handler{
				"require":  m.Require(echoViewer),
				"optional": m.Optional(echoViewer),
			} {
				req := httptest.NewRequest(http.MethodGet, "/api/server/select", nil)
				if tt.header != "" {
					req.Header.Set("Authorization", tt.header)
				}
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, req)

				want := tt.wantRequire
				if mode == "optional" {
					want = tt.wantOptional
				}
				require.Equal(t, want, rec.Code, mode)

				if want == http.StatusOK {
					assert.Equal(t, tt.wantBody, rec.Body.String(), mode)
					continue
				}

				var resp pkg.APIResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), mode)
				assert.False(t, resp.Success, mode)
				assert.NotEmpty(t, resp.Error, mode)
			}
		})
	}
}
