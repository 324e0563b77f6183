package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Post("/drafts/{draftID}/submit", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})
	r.Get("/catalog", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	})

	accepted := HTTPRequestsTotal.WithLabelValues(http.MethodPost, "/drafts/{draftID}/submit", "202")
	ok := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/catalog", "200")
	acceptedBefore, okBefore := testutil.ToFloat64(accepted), testutil.ToFloat64(ok)

	for _, id := range []string{"a", "b", "c"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/drafts/"+id+"/submit", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/catalog", nil))

	assert.Equal(t, acceptedBefore+3, testutil.ToFloat64(accepted), "ids collapse into one series")
	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok), "an implicit 200 is recorded as 200")
	assert.Zero(t, testutil.ToFloat64(HTTPRequestsInFlight))
}

func TestRoutePattern_WithoutChi(t *testing.T) {
	assert.Equal(t, unmatchedRoute, routePattern(httptest.NewRequest(http.MethodGet, "/drafts/abc", nil)))
}
