package server

import (
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// clientWindow counts one client's activity since start
type clientWindow struct {
	start      time.Time
	requests   int
	failedAuth int
}

// ClientMonitor tracks request volume and failed logins per client IP over a fixed
// window that starts at the client's first request. Idle clients age out of a
// bounded LRU, so a flood of distinct addresses cannot grow memory without limit.
type ClientMonitor struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *clientWindow]
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewClientMonitor allows RateLimitPerWindow requests per IP per RateWindow
func NewClientMonitor() *ClientMonitor {
	return NewClientMonitorWithLimit(RateLimitPerWindow, RateWindow)
}

func NewClientMonitorWithLimit(limit int, window time.Duration) *ClientMonitor {
	return &ClientMonitor{
		clients: expirable.NewLRU[string, *clientWindow](MaxTrackedClients, nil, 2*window),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// windowFor returns ip's current window, opening a fresh one when the last has lapsed.
// Caller holds mu.
func (m *ClientMonitor) windowFor(ip string) *clientWindow {
	now := m.now()
	cw, ok := m.clients.Get(ip)
	if !ok || now.Sub(cw.start) >= m.window {
		cw = &clientWindow{start: now}
		m.clients.Add(ip, cw)
	}
	return cw
}

// Allow counts a request from ip and reports whether it is within the limit
func (m *ClientMonitor) Allow(ip string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	cw := m.windowFor(ip)
	cw.requests++
	if cw.requests <= m.limit {
		return true
	}
	if (cw.requests-m.limit)%RateAlertEvery == 1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", cw.requests, "window", m.window)
	}
	return false
}

func (m *ClientMonitor) RecordFailedAuth(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cw := m.windowFor(ip)
	cw.failedAuth++
	if cw.failedAuth == FailedAuthAlertLimit {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", cw.failedAuth)
	}
}

// Counts returns ip's requests and failed logins in its current window
func (m *ClientMonitor) Counts(ip string) (requests, failedAuth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cw, ok := m.clients.Peek(ip); ok && m.now().Sub(cw.start) < m.window {
		return cw.requests, cw.failedAuth
	}
	return 0, 0
}

// RateLimitMiddleware answers 429 once a client exceeds its budget
func RateLimitMiddleware(trustedProxies []string, monitor *ClientMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !monitor.Allow(clientIP(r, trustedProxies)) {
				w.Header().Set("Retry-After", retryAfterSeconds(monitor.window))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func retryAfterSeconds(d time.Duration) string {
	return strconv.Itoa(int(d.Round(time.Second) / time.Second))
}

// clientIP is the peer address, or the rightmost X-Forwarded-For hop when the peer
// is a trusted proxy. Earlier hops are client-controlled and ignored.
func clientIP(r *http.Request, trustedProxies []string) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !slices.Contains(trustedProxies, peer) {
		return peer
	}

	fwd := r.Header.Get(HeaderForwardedFor)
	if fwd == "" {
		return peer
	}
	if i := strings.LastIndexByte(fwd, ','); i >= 0 {
		fwd = fwd[i+1:]
	}
	return strings.TrimSpace(fwd)
}
