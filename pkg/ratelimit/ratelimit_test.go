package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestLoginRateLimiter_Allow(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	rl := newLimiter(3, time.Minute, clock.now)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "attempt %d", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"))

	// Diğer IP etkilenmez
	assert.True(t, rl.Allow("5.6.7.8"))

	clock.advance(20 * time.Second)
	assert.Equal(t, 40, rl.RetryAfterSeconds("1.2.3.4"))

	clock.advance(41 * time.Second)
	assert.True(t, rl.Allow("1.2.3.4"), "new window")
}

func TestLoginRateLimiter_Reset(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	rl := newLimiter(1, time.Minute, clock.now)

	assert.True(t, rl.Allow("ip"))
	assert.False(t, rl.Allow("ip"))

	rl.Reset("ip")
	assert.Equal(t, 0, rl.RetryAfterSeconds("ip"))
	assert.True(t, rl.Allow("ip"))
}

func TestLoginRateLimiter_Cleanup(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	rl := newLimiter(5, time.Minute, clock.now)

	rl.Allow("old")
	clock.advance(2 * time.Minute)
	rl.Allow("fresh")
	rl.cleanup()

	assert.NotContains(t, rl.buckets, "old")
	assert.Contains(t, rl.buckets, "fresh")
}

func TestLoginRateLimiter_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	rl := NewLoginRateLimiter(DefaultLoginAttempts, DefaultLoginWindow)
	rl.Stop()
	rl.Stop()
}

func TestExtractIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "forwarded for first hop", headers: map[string]string{"X-Forwarded-For": " 10.0.0.1 , 10.0.0.2"}, remote: "1.1.1.1:80", want: "10.0.0.1"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "10.0.0.9"}, remote: "1.1.1.1:80", want: "10.0.0.9"},
		{name: "remote addr", remote: "192.168.1.5:5555", want: "192.168.1.5"},
		{name: "remote addr without port", remote: "192.168.1.5", want: "192.168.1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("POST", "/api/auth/login", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ExtractIP(r))
		})
	}
}

func TestFormatRetryMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "45 second(s)", FormatRetryMessage(45))
	assert.Equal(t, "2 minute(s)", FormatRetryMessage(120))
}
