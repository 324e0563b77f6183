package server

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/osse101/BabyBank_Go/internal/logger"
)

// AuthMiddleware requires the shared X-API-Key on everything outside PublicPaths.
// Failures are reported to monitor so repeated guessing from one client is flagged.
func AuthMiddleware(apiKey string, trustedProxies []string, monitor *ClientMonitor) func(http.Handler) http.Handler {
	want := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(got), want) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r, trustedProxies)
			monitor.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"ip", ip, "path", r.URL.Path, "has_key", got != "")
			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequestSizeLimitMiddleware caps bodies at maxBytes, or uploadMaxBytes on the image upload route
func RequestSizeLimitMiddleware(maxBytes, uploadMaxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limit := maxBytes
			if strings.HasSuffix(strings.TrimSuffix(r.URL.Path, "/"), UploadPathSuffix) {
				limit = uploadMaxBytes
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

var securityHeaders = map[string]string{
	"X-Content-Type-Options": "nosniff",
	"X-Frame-Options":        "DENY",
	"Referrer-Policy":        "no-referrer",
	"Cache-Control":          "no-store",
}

// SecurityHeadersMiddleware stamps the API's fixed response headers. Responses are
// JSON for a mobile client, so framing and caching are refused outright.
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for k, v := range securityHeaders {
			h.Set(k, v)
		}
		next.ServeHTTP(w, r)
	})
}
