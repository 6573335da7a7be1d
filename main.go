// Package main, djchat backend uygulamasının giriş noktasıdır.
//
// Dependency Injection "wire-up":
//
//  1. Config'i yükle
//  2. Database'i başlat (embedded migration'lar)
//  3. Repository'leri oluştur (init_repos.go)
//  4. Service'leri oluştur, gerekirse demo veriyi yükle (init_services.go)
//  5. Handler'ları oluştur (init_handlers.go)
//  6. Route'ları bağla + CORS (init_routes.go)
//  7. HTTP Server'ı başlat, graceful shutdown
//
// Global değişken YOK — her şey burada oluşturulup birbirine bağlanıyor.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/akinalp/djchat/config"
	"github.com/akinalp/djchat/database"
	"github.com/akinalp/djchat/pkg/ratelimit"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("[main] djchat server starting...")

	// ─── 1. Config ───
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[main] failed to load config: %v", err)
	}
	log.Printf("[main] config loaded (port=%d)", cfg.Server.Port)

	// ─── 2. Database ───
	db, err := database.New(cfg.Database.Path, database.Migrations())
	if err != nil {
		log.Fatalf("[main] failed to initialize database: %v", err)
	}
	defer db.Close()

	// ─── 3. Repository Layer ───
	repos := initRepositories(db.Conn)

	// ─── 4. Service Layer ───
	svcs := initServices(repos, db.Conn, cfg)

	if cfg.Seed.Demo {
		if _, err := svcs.Seed.SeedDemo(context.Background()); err != nil {
			log.Fatalf("[main] failed to seed demo data: %v", err)
		}
	}

	// ─── 5. Handler Layer ───
	loginLimiter := ratelimit.NewLoginRateLimiter(ratelimit.DefaultLoginAttempts, ratelimit.DefaultLoginWindow)
	defer loginLimiter.Stop()

	h := initHandlers(svcs, loginLimiter)

	// ─── 6. Routes + CORS ───
	handler := initRoutes(h, svcs.Auth, repos.User, cfg.CORS.AllowedOrigins)

	// ─── 7. HTTP Server ───
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[main] server listening on %s", cfg.Server.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("[main] server error: %v", err)
		}
	}()

	<-done
	log.Println("[main] shutting down...")

	// Yeni request kabul edilmez, mevcut request'ler 5sn içinde bitmeli.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("[main] forced shutdown: %v", err)
		return
	}

	log.Println("[main] server stopped gracefully")
}
