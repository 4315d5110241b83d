package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	RequestsTotal      prometheus.Counter
	PollAttemptsTotal  prometheus.Counter
	PollExhaustedTotal prometheus.Counter

	UpstreamErrors      *prometheus.CounterVec
	UpstreamLatency     *prometheus.HistogramVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestsTotal   *prometheus.CounterVec
	Registry            *prometheus.Registry
}

// Create Prometheus collectors and register them
func NewMetrics(p *prometheus.Registry) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hotel_search_requests_total",
			Help: "Total number of incoming search requests",
		}),
		PollAttemptsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "price_poll_attempts_total",
			Help: "GET attempts against the pricing feed",
		}),
		PollExhaustedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "price_poll_exhausted_total",
			Help: "Polling loops that ran out of attempts without prices",
		}),
		UpstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "upstream_errors_total",
			Help: "Failed calls per upstream feed",
		}, []string{"feed"},
		),
		UpstreamLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_latency_seconds",
				Help:    "Latency of upstream feed calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"feed"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latencies",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		Registry: p,
	}

	// Register metrics with Prometheus
	p.MustRegister(
		m.RequestsTotal,
		m.PollAttemptsTotal,
		m.PollExhaustedTotal,
		m.UpstreamErrors,
		m.UpstreamLatency,
		m.HTTPRequestDuration,
		m.HTTPRequestsTotal,
	)

	return m
}

func (m *Metrics) IncRequests()      { m.RequestsTotal.Inc() }
func (m *Metrics) IncPollAttempts()  { m.PollAttemptsTotal.Inc() }
func (m *Metrics) IncPollExhausted() { m.PollExhaustedTotal.Inc() }

func (m *Metrics) IncUpstreamFailure(feed string) {
	m.UpstreamErrors.WithLabelValues(feed).Inc()
}

func (m *Metrics) ObserveUpstreamLatency(feed string, seconds float64) {
	m.UpstreamLatency.WithLabelValues(feed).Observe(seconds)
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
