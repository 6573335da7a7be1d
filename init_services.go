// Package main — Service katmanı başlatma.
package main

import (
	"database/sql"

	"github.com/akinalp/djchat/config"
	"github.com/akinalp/djchat/services"
)

// Services, tüm service instance'larını tutan container struct.
type Services struct {
	Auth     services.AuthService
	Server   services.ServerService
	Category services.CategoryService
	Seed     services.SeedService
}

// initServices, service'leri repository'lerle oluşturur.
// SeedService kendi transaction'ını açtığı için *sql.DB alır.
func initServices(repos *Repositories, db *sql.DB, cfg *config.Config) *Services {
	return &Services{
		Auth:     services.NewAuthService(repos.User, cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry),
		Server:   services.NewServerService(repos.Server),
		Category: services.NewCategoryService(repos.Category),
		Seed:     services.NewSeedService(db),
	}
}
