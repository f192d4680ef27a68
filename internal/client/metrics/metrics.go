// Package metrics exposes Prometheus counters for file operations.
// Registration happens on the default registry; the CLI serves them via
// Handler when a metrics listen address is configured.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// OperationsTotal counts file operations by kind and outcome.
	OperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filedeck_operations_total",
			Help: "File operations issued by the client, by operation and result",
		},
		[]string{"op", "result"},
	)

	// RollbacksTotal counts optimistic records that had to be removed after
	// their server call failed.
	RollbacksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "filedeck_optimistic_rollbacks_total",
			Help: "Optimistic ledger mutations rolled back after a failed server call",
		},
	)

	// LedgerRecords tracks the current ledger size.
	LedgerRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "filedeck_ledger_records",
			Help: "Records currently held in the client ledger",
		},
	)
)

// Observe records one operation outcome.
func Observe(op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	OperationsTotal.WithLabelValues(op, result).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
