// Package metrics provides application-level Prometheus collectors.
// Collectors register with the default registry and are served by Handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Storage collectors.
var (
	StoreOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskready_store_operations_total",
		Help: "Key-value store operations by backend, operation and result",
	}, []string{"backend", "op", "result"})

	StoreDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "riskready_store_operation_duration_seconds",
		Help:    "Key-value store operation latency",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 9), // 0.1ms to ~6.5s
	}, []string{"backend", "op"})
)

// State collectors.
var (
	StateFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskready_state_fallbacks_total",
		Help: "Stored values replaced by defaults because they were missing or unreadable",
	}, []string{"key"})

	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskready_mutations_total",
		Help: "Collection mutations by collection and action",
	}, []string{"collection", "action"})
)

// Surface collectors.
var (
	APIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskready_api_requests_total",
		Help: "HTTP API requests by route pattern and status code",
	}, []string{"route", "code"})

	MCPToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskready_mcp_tool_calls_total",
		Help: "MCP tool invocations by tool and result",
	}, []string{"tool", "result"})

	ReviewRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "riskready_review_runs_total",
		Help: "Completed preparedness reviews",
	})

	ReviewFindings = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskready_review_findings_total",
		Help: "Review findings by kind",
	}, []string{"kind"})
)

// Result returns the result label for err.
func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler { return promhttp.Handler() }
