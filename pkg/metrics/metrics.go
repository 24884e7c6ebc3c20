package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPRequestsTotal counts inbound HTTP requests by route, method and status
var HTTPRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "finsight_http_requests_total",
		Help: "Total number of HTTP requests handled by the API",
	},
	[]string{"path", "method", "status"},
)

// HTTPRequestDuration records latency distribution for inbound requests
var HTTPRequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "finsight_http_request_duration_seconds",
		Help:    "Latency in seconds to serve individual HTTP requests",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"path", "method"},
)

// AggregationDuration records how long each domain snapshot takes to build
var AggregationDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "finsight_aggregation_duration_seconds",
		Help:    "Time in seconds to aggregate one domain snapshot",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"domain"},
)

// EngineCallsTotal counts outbound workflow-engine calls by operation and outcome
var EngineCallsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "finsight_engine_calls_total",
		Help: "Total number of workflow engine calls by operation and outcome",
	},
	[]string{"operation", "outcome"},
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration)
	prometheus.MustRegister(AggregationDuration, EngineCallsTotal)
}
