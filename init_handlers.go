// Package main — Handler katmanı başlatma.
package main

import (
	"github.com/akinalp/djchat/handlers"
	"github.com/akinalp/djchat/pkg/ratelimit"
)

// Handlers, tüm HTTP handler instance'larını tutan container struct.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Server   *handlers.ServerHandler
	Category *handlers.CategoryHandler
}

// initHandlers, handler'ları service'lerle oluşturur.
// loginLimiter nil ise login rate limiting kapalıdır.
func initHandlers(svcs *Services, loginLimiter *ratelimit.LoginRateLimiter) *Handlers {
	return &Handlers{
		Auth:     handlers.NewAuthHandler(svcs.Auth, loginLimiter),
		Server:   handlers.NewServerHandler(svcs.Server),
		Category: handlers.NewCategoryHandler(svcs.Category),
	}
}
