package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry holds the service's Prometheus collectors. Collectors are
// registered on the default registry so promhttp.Handler() serves them.
type Registry struct {
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	PipelineFailures     *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := &Registry{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),

		HTTPRequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "HTTP requests currently being served.",
		}),

		PipelineFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "distance_pipeline_failures_total",
			Help: "Failed pipeline runs by failure kind.",
		}, []string{"kind"}),
	}

	prometheus.MustRegister(
		r.HTTPRequestsTotal,
		r.HTTPRequestDuration,
		r.HTTPRequestsInFlight,
		r.PipelineFailures,
	)

	return r
}
