// Package ratelimit — IP bazlı login deneme sınırlayıcı.
//
// Her IP için sabit bir pencere içinde deneme sayılır; pencere dolunca sayaç
// sıfırlanır. Başarılı login Reset ile sayacı temizler.
// Sayaçlar in-memory tutulur (tek instance deploy), süresi dolanlar arka planda silinir.
//
// pkg/ratelimit hiçbir proje içi pakete bağımlı değildir (leaf dependency).
package ratelimit

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Login için varsayılan değerler: 2 dakikada 5 deneme.
const (
	DefaultLoginAttempts = 5
	DefaultLoginWindow   = 2 * time.Minute
)

type bucket struct {
	count       int
	windowStart time.Time
}

// LoginRateLimiter, IP başına deneme sayacı.
//
//	limiter := NewLoginRateLimiter(DefaultLoginAttempts, DefaultLoginWindow)
//	defer limiter.Stop()
//	if !limiter.Allow(ip) { ... 429 ... }
//	limiter.Reset(ip) // başarılı login
type LoginRateLimiter struct {
	mu          sync.Mutex
	buckets     map[string]*bucket
	maxAttempts int
	window      time.Duration
	now         func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

// NewLoginRateLimiter, limiter'ı oluşturur ve temizleme goroutine'ini başlatır.
// Kapatırken Stop çağrılmalı.
func NewLoginRateLimiter(maxAttempts int, window time.Duration) *LoginRateLimiter {
	rl := newLimiter(maxAttempts, window, time.Now)
	go rl.cleanupLoop(time.Minute)
	return rl
}

func newLimiter(maxAttempts int, window time.Duration, now func() time.Time) *LoginRateLimiter {
	return &LoginRateLimiter{
		buckets:     make(map[string]*bucket),
		maxAttempts: maxAttempts,
		window:      window,
		now:         now,
		stop:        make(chan struct{}),
	}
}

// Allow, denemeyi sayar ve limit aşılmadıysa true döner.
// Reddedilen denemeler de sayılır.
func (rl *LoginRateLimiter) Allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[ip]
	if !ok || rl.expired(b, now) {
		rl.buckets[ip] = &bucket{count: 1, windowStart: now}
		return true
	}

	b.count++
	return b.count <= rl.maxAttempts
}

// Reset, IP'nin sayacını siler.
func (rl *LoginRateLimiter) Reset(ip string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.buckets, ip)
}

// RetryAfterSeconds, pencerenin bitmesine kalan süre (yukarı yuvarlanmış saniye).
// Retry-After header değeri olarak kullanılır. Kayıt yoksa 0.
func (rl *LoginRateLimiter) RetryAfterSeconds(ip string) int {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[ip]
	if !ok {
		return 0
	}

	remaining := b.windowStart.Add(rl.window).Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int((remaining + time.Second - 1) / time.Second)
}

// Stop, temizleme goroutine'ini durdurur. Birden fazla çağrı güvenlidir.
func (rl *LoginRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *LoginRateLimiter) expired(b *bucket, now time.Time) bool {
	return now.Sub(b.windowStart) > rl.window
}

func (rl *LoginRateLimiter) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stop:
			return
		}
	}
}

func (rl *LoginRateLimiter) cleanup() {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, b := range rl.buckets {
		if rl.expired(b, now) {
			delete(rl.buckets, ip)
		}
	}
}

// ExtractIP, client IP'sini döner.
// Sıra: X-Forwarded-For (ilk değer), X-Real-IP, RemoteAddr.
func ExtractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// FormatRetryMessage, saniyeyi okunabilir metne çevirir: 120 → "2 minute(s)".
func FormatRetryMessage(seconds int) string {
	if seconds >= 60 {
		return fmt.Sprintf("%d minute(s)", seconds/60)
	}
	return fmt.Sprintf("%d second(s)", seconds)
}
