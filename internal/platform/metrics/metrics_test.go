package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRequest("get_person", OutcomeOK, 20*time.Millisecond)
	m.ObserveRequest("get_person", OutcomeOK, 30*time.Millisecond)
	m.ObserveRequest("get_person", OutcomeNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("get_person", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("get_person", OutcomeNotFound)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestLatency))
}

func TestIncrementCacheLookup(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.IncrementCacheLookup("hit")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")))
}

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("get_person", OutcomeError, time.Second)
		m.IncrementCacheLookup("miss")
	})
}

func TestSummarize(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveRequest("person_medium.get", OutcomeOK, time.Millisecond)
	m.ObserveRequest("person_medium.get", OutcomeOK, time.Millisecond)
	m.ObserveRequest("person_medium.get", OutcomeNotFound, time.Millisecond)
	m.ObserveRequest("privileges.get", OutcomeError, time.Millisecond)
	m.IncrementCacheLookup("hit")
	m.IncrementCacheLookup("miss")
	m.IncrementCacheLookup("miss")

	summary, err := Summarize(reg)
	require.NoError(t, err)
	assert.Equal(t, []CallCount{
		{Operation: "person_medium.get", Outcome: OutcomeNotFound, Count: 1},
		{Operation: "person_medium.get", Outcome: OutcomeOK, Count: 2},
		{Operation: "privileges.get", Outcome: OutcomeError, Count: 1},
	}, summary.Calls)
	assert.Equal(t, map[string]int{"hit": 1, "miss": 2}, summary.CacheLookups)
}

func TestSummarize_Empty(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	summary, err := Summarize(reg)
	require.NoError(t, err)
	assert.Empty(t, summary.Calls)
	assert.Empty(t, summary.CacheLookups)
}

func TestHTTPMiddleware_LabelsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTP(reg, "mockregistry")

	router := chi.NewRouter()
	router.Use(m.Middleware)
	router.Route("/folk/v3", func(r chi.Router) {
		r.Delete("/community/{id}", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		r.Get("/privileges", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("{}"))
		})
	})

	for _, target := range []string{"/folk/v3/community/1", "/folk/v3/community/2"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, target, nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/folk/v3/privileges", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodDelete, "/folk/v3/community/{id}", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, "/folk/v3/privileges", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues(http.MethodGet, unmatchedRoute, "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))
}
