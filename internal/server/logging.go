package server

import (
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/osse101/BabyBank_Go/internal/logger"
)

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// loggingMiddleware assigns the request id (reusing the client's X-Request-ID when
// sent), echoes it back and logs the start and end of the request. Probe and scrape
// traffic is passed straight through.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), id)
		w.Header().Set(HeaderRequestID, id)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds())
	})
}

// recoverMiddleware turns a handler panic into a logged 500 instead of a dropped connection
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil || rec == http.ErrAbortHandler {
				if rec != nil {
					panic(rec)
				}
				return
			}
			logger.FromContext(r.Context()).Error(LogMsgPanicRecovered,
				"panic", rec, "path", r.URL.Path, "stack", string(debug.Stack()))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}

func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	for _, secret := range []string{HeaderAPIKey, HeaderAuthorization} {
		if out.Get(secret) != "" {
			out.Set(secret, RedactedValue)
		}
	}
	return out
}
