// Package metrics holds the Prometheus collectors for the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes counters/histograms for submissions and HTTP traffic.
type Metrics struct {
	submissionsTotal *prometheus.CounterVec
	requestsTotal    *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
}

// New registers the collectors on reg, or on the default registerer when
// reg is nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contact_service",
			Subsystem: "submissions",
			Name:      "total",
			Help:      "Form submissions by collection and outcome",
		}, []string{"collection", "outcome"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "contact_service",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code",
		}, []string{"route", "method", "code"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "contact_service",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.requestsTotal, m.requestLatency)
	return m
}

// Submission outcomes.
const (
	OutcomeStored   = "stored"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

func (m *Metrics) ObserveSubmission(collection, outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(collection, outcome).Inc()
}

func (m *Metrics) ObserveRequest(route, method, code string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(route, method, code).Inc()
	m.requestLatency.WithLabelValues(route, method).Observe(seconds)
}
