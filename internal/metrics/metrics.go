// Package metrics exposes Prometheus instruments for the tool surface.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls counts tool invocations by tool name and outcome.
	ToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "talekeeper",
		Name:      "tool_calls_total",
		Help:      "Tool invocations by tool name and outcome.",
	}, []string{"tool", "outcome"})

	// OrdersPlaced counts orders appended to the ledger.
	OrdersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "talekeeper",
		Name:      "orders_placed_total",
		Help:      "Orders created through place_order.",
	})

	// OrderTotals observes order grand totals in catalog currency units.
	OrderTotals = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "talekeeper",
		Name:      "order_total_amount",
		Help:      "Distribution of order grand totals.",
		Buckets:   prometheus.ExponentialBuckets(100, 2.5, 8),
	})
)

// ObserveTool records one tool invocation.
func ObserveTool(tool string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	ToolCalls.WithLabelValues(tool, outcome).Inc()
}
