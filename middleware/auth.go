// Package middleware, HTTP request pipeline'ına eklenen ara katmanları barındırır.
//
// Go'da middleware bir fonksiyondur:
//
//	func(next http.Handler) http.Handler
//
// Middleware kendi işini yapar (ör: token doğrula), sonra next'i çağırır.
// Hata varsa next çağrılmaz, request burada durur.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/akinalp/djchat/handlers"
	"github.com/akinalp/djchat/models"
	"github.com/akinalp/djchat/pkg"
	"github.com/akinalp/djchat/repository"
	"github.com/akinalp/djchat/services"
)

const bearerPrefix = "Bearer "

// AuthMiddleware, JWT token doğrulama middleware'ı.
type AuthMiddleware struct {
	authService services.AuthService
	userRepo    repository.UserRepository
}

// NewAuthMiddleware, constructor.
func NewAuthMiddleware(authService services.AuthService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		userRepo:    userRepo,
	}
}

// Require, JWT token zorunlu kılan middleware.
// Header yoksa veya token geçersizse → 401.
func (m *AuthMiddleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			pkg.ErrorWithMessage(w, http.StatusUnauthorized, "authorization header required")
			return
		}

		user, err := m.authenticate(r.Context(), authHeader)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), handlers.UserContextKey, user)))
	})
}

// Optional, public endpoint'ler için.
//
//   - Authorization header yok → anonim istek, next çağrılır
//   - Header var ve token geçerli → kullanıcı context'e eklenir
//   - Header var ama bozuk/geçersiz → 401 (sessizce anonime düşürülmez)
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := m.authenticate(r.Context(), authHeader)
		if err != nil {
			pkg.Error(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), handlers.UserContextKey, user)))
	})
}

// authenticate, "Bearer <token>" header'ını doğrular ve kullanıcıyı DB'den getirir.
// Token geçerli ama kullanıcı silinmiş olabilir; bu da 401'dir.
func (m *AuthMiddleware) authenticate(ctx context.Context, authHeader string) (*models.User, error) {
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return nil, fmt.Errorf("%w: invalid authorization format, use: Bearer <token>", pkg.ErrUnauthorized)
	}
	tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

	claims, err := m.authService.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := m.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: user not found", pkg.ErrUnauthorized)
	}

	// Password hash context'te taşınmaz
	user.PasswordHash = ""
	return user, nil
}
