package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ping(err error) HealthChecker {
	return HealthCheckFunc(func(context.Context) error { return err })
}

func readyz(t *testing.T, checks map[string]HealthChecker) (int, HealthResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	HandleReadyz(checks).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	var body HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("every dependency answers", func(t *testing.T) {
		code, body := readyz(t, map[string]HealthChecker{"database": ping(nil), "redis": ping(nil)})

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, map[string]string{"database": "ok", "redis": "ok"}, body.Checks)
	})

	t.Run("one dependency down", func(t *testing.T) {
		code, body := readyz(t, map[string]HealthChecker{
			"database": ping(errors.New("connection refused")),
			"redis":    ping(nil),
		})

		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "unavailable", body.Status)
		assert.Equal(t, "unavailable", body.Checks["database"])
		assert.Equal(t, "ok", body.Checks["redis"])
	})

	t.Run("checks run under a deadline", func(t *testing.T) {
		var hadDeadline bool
		code, _ := readyz(t, map[string]HealthChecker{"redis": HealthCheckFunc(func(ctx context.Context) error {
			_, hadDeadline = ctx.Deadline()
			return nil
		})})

		assert.Equal(t, http.StatusOK, code)
		assert.True(t, hadDeadline)
	})

	t.Run("checks run in parallel", func(t *testing.T) {
		slow := HealthCheckFunc(func(context.Context) error {
			time.Sleep(150 * time.Millisecond)
			return nil
		})

		start := time.Now()
		code, _ := readyz(t, map[string]HealthChecker{"a": slow, "b": slow, "c": slow})

		assert.Equal(t, http.StatusOK, code)
		assert.Less(t, time.Since(start), 400*time.Millisecond)
	})

	t.Run("no dependencies configured", func(t *testing.T) {
		code, body := readyz(t, nil)
		assert.Equal(t, http.StatusOK, code)
		assert.Empty(t, body.Checks)
	})
}

func TestHandleVersion(t *testing.T) {
	t.Setenv("VERSION", "1.4.0")

	w := httptest.NewRecorder()
	HandleVersion("postgres").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"1.4.0"`)
	assert.Contains(t, w.Body.String(), `"backend":"postgres"`)
}
