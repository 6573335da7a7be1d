// Package main — HTTP route registration.
//
// initRoutes, tüm API endpoint'lerini mux'a bağlar ve CORS ile sarar.
// Middleware chain helper'ları:
//   - auth: JWT zorunlu
//   - public: JWT opsiyonel (varsa doğrulanır, yoksa anonim)
package main

import (
	"fmt"
	"net/http"

	"github.com/akinalp/djchat/middleware"
	"github.com/akinalp/djchat/repository"
	"github.com/akinalp/djchat/services"
	"github.com/rs/cors"
)

func initRoutes(
	h *Handlers,
	authService services.AuthService,
	userRepo repository.UserRepository,
	allowedOrigins []string,
) http.Handler {
	mux := http.NewServeMux()

	// ─── Middleware ───
	authMw := middleware.NewAuthMiddleware(authService, userRepo)

	auth := func(handler http.HandlerFunc) http.Handler {
		return authMw.Require(handler)
	}
	public := func(handler http.HandlerFunc) http.Handler {
		return authMw.Optional(handler)
	}

	// Health check
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"status":"ok","service":"djchat"}`)
	})

	// Auth
	mux.HandleFunc("POST /api/auth/register", h.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.Handle("GET /api/users/me", auth(h.Auth.Me))

	// Servers — public, by_user / by_serverid kimlik gerektirir (service kontrol eder)
	mux.Handle("GET /api/server/select", public(h.Server.List))
	mux.HandleFunc("GET /api/server/category", h.Category.List)

	// ─── CORS ───
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: true,
	})

	return corsHandler.Handler(mux)
}
