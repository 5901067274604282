package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	general  *rate.Limiter
	login    *rate.Limiter
	register *rate.Limiter
	lastSeen time.Time
}

// RateLimit throttles requests per client IP. Login and registration
// endpoints carry stricter per-minute budgets than the rest of the API.
type RateLimit struct {
	generalRPM  int
	loginRPM    int
	registerRPM int
	mu          sync.Mutex
	clients     map[string]*clientLimiter
}

func NewRateLimit(generalRPM, loginRPM, registerRPM int) *RateLimit {
	if generalRPM <= 0 {
		generalRPM = 100
	}
	if loginRPM <= 0 {
		loginRPM = 5
	}
	if registerRPM <= 0 {
		registerRPM = 3
	}

	return &RateLimit{
		generalRPM:  generalRPM,
		loginRPM:    loginRPM,
		registerRPM: registerRPM,
		clients:     map[string]*clientLimiter{},
	}
}

func (m *RateLimit) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := extractClientIP(r)
		limiter := m.getLimiter(clientIP)

		path := strings.ToLower(r.URL.Path)
		target := limiter.general
		switch {
		case strings.HasPrefix(path, "/api/v1/auth/login"):
			target = limiter.login
		case strings.HasPrefix(path, "/api/v1/auth/register"):
			target = limiter.register
		}

		if !target.Allow() {
			w.Header().Set("Retry-After", "60")
			errorResponse(w, http.StatusTooManyRequests, "too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimit) getLimiter(clientIP string) *clientLimiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limiter, exists := m.clients[clientIP]; exists {
		limiter.lastSeen = time.Now()
		m.gcLocked()
		return limiter
	}

	created := &clientLimiter{
		general:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.generalRPM)), m.generalRPM),
		login:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.loginRPM)), m.loginRPM),
		register: rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.registerRPM)), m.registerRPM),
		lastSeen: time.Now(),
	}
	m.clients[clientIP] = created
	m.gcLocked()

	return created
}

func (m *RateLimit) gcLocked() {
	if len(m.clients) < 1000 {
		return
	}

	cutoff := time.Now().Add(-10 * time.Minute)
	for ip, limiter := range m.clients {
		if limiter.lastSeen.Before(cutoff) {
			delete(m.clients, ip)
		}
	}
}

func extractClientIP(r *http.Request) string {
	forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))
	if forwarded != "" {
		parts := strings.Split(forwarded, ",")
		if len(parts) > 0 {
			return strings.TrimSpace(parts[0])
		}
	}

	realIP := strings.TrimSpace(r.Header.Get("X-Real-IP"))
	if realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}

	if strings.TrimSpace(r.RemoteAddr) == "" {
		return "unknown"
	}

	return r.RemoteAddr
}
