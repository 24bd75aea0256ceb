// Package observability holds prometheus collectors and the OpenTelemetry
// tracer bootstrap.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DetailFetchLatency records post-detail assembly latency per execution
	// strategy so the sequential and concurrent paths can be compared.
	DetailFetchLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pinboard_detail_fetch_latency_seconds",
		Help:    "Post detail aggregation latency in seconds by strategy",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"})

	// HealthCheckRequests counts health endpoint hits by probe type.
	HealthCheckRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pinboard_healthcheck_requests_total",
		Help: "Total number of health check requests by probe",
	}, []string{"probe"})
)
