package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for registry calls.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

const (
	requestsName     = "folkv3_registry_requests_total"
	cacheLookupsName = "folkv3_person_cache_lookups_total"
)

// Metrics holds the Prometheus metrics for registry client calls and the person cache.
type Metrics struct {
	// Registry calls by operation and outcome
	Requests *prometheus.CounterVec

	// Registry call latency by operation
	RequestLatency *prometheus.HistogramVec

	// Person cache lookups by result (hit, miss, error)
	CacheLookups *prometheus.CounterVec
}

// New registers the metrics with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: requestsName,
			Help: "Total registry calls by operation and outcome",
		}, []string{"operation", "outcome"}),

		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "folkv3_registry_request_duration_seconds",
			Help:    "Duration of registry calls by operation",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),

		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: cacheLookupsName,
			Help: "Person cache lookups by result",
		}, []string{"result"}),
	}
}

// ObserveRequest records one registry call.
func (m *Metrics) ObserveRequest(operation, outcome string, d time.Duration) {
	if m != nil {
		m.Requests.WithLabelValues(operation, outcome).Inc()
		m.RequestLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// IncrementCacheLookup records a cache hit, miss or error.
func (m *Metrics) IncrementCacheLookup(result string) {
	if m != nil {
		m.CacheLookups.WithLabelValues(result).Inc()
	}
}

// CallCount is the number of registry calls for one operation and outcome.
type CallCount struct {
	Operation string
	Outcome   string
	Count     int
}

// Summary is what the registry clients and the person cache recorded.
type Summary struct {
	Calls        []CallCount
	CacheLookups map[string]int
}

// Summarize reads the registry call and cache lookup counters back from g.
// Calls are ordered by operation, then outcome.
func Summarize(g prometheus.Gatherer) (Summary, error) {
	families, err := g.Gather()
	if err != nil {
		return Summary{}, err
	}
	summary := Summary{CacheLookups: map[string]int{}}
	for _, family := range families {
		switch family.GetName() {
		case requestsName:
			for _, m := range family.GetMetric() {
				c := CallCount{Count: int(m.GetCounter().GetValue())}
				for _, label := range m.GetLabel() {
					switch label.GetName() {
					case "operation":
						c.Operation = label.GetValue()
					case "outcome":
						c.Outcome = label.GetValue()
					}
				}
				summary.Calls = append(summary.Calls, c)
			}
		case cacheLookupsName:
			for _, m := range family.GetMetric() {
				for _, label := range m.GetLabel() {
					if label.GetName() == "result" {
						summary.CacheLookups[label.GetValue()] = int(m.GetCounter().GetValue())
					}
				}
			}
		}
	}
	return summary, nil
}
