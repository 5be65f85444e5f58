package metrics

import "github.com/prometheus/client_golang/prometheus"

// Query builder Prometheus metrics.
var (
	QueriesBuiltTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carequery",
			Name:      "queries_built_total",
			Help:      "Total number of query documents built",
		},
		[]string{"kind", "status"},
	)

	QueryClauses = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "carequery",
			Name:      "query_filter_clauses",
			Help:      "Number of top-level filter clauses per built query",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 8},
		},
		[]string{"kind"},
	)
)

var queryMetricsRegistered bool

// RegisterQueryMetrics registers Prometheus query builder metrics. Must be called once from main.
func RegisterQueryMetrics() {
	if queryMetricsRegistered {
		return
	}
	prometheus.MustRegister(QueriesBuiltTotal)
	prometheus.MustRegister(QueryClauses)
	queryMetricsRegistered = true
}
