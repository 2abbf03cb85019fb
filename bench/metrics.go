package bench

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors updated by a Runner.
type Metrics struct {
	SearchDuration *prometheus.HistogramVec
	ExpandedNodes  *prometheus.CounterVec
	ErrorsTotal    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		SearchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bidipath_search_duration_seconds",
				Help:    "Shortest-path search duration in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{"algorithm", "scenario"},
		),
		ExpandedNodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bidipath_expanded_nodes_total",
				Help: "Nodes finalized by searches",
			},
			[]string{"algorithm"},
		),
		ErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bidipath_errors_total",
				Help: "Search failures and failed checks by kind",
			},
			[]string{"algorithm", "kind"},
		),
	}

	for _, c := range []prometheus.Collector{m.SearchDuration, m.ExpandedNodes, m.ErrorsTotal} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(alg Algorithm, scenario string, d time.Duration, expanded int) {
	if m == nil {
		return
	}
	m.SearchDuration.WithLabelValues(string(alg), scenario).Observe(d.Seconds())
	m.ExpandedNodes.WithLabelValues(string(alg)).Add(float64(expanded))
}

func (m *Metrics) fail(alg Algorithm, kind string) {
	if m == nil {
		return
	}
	m.ErrorsTotal.WithLabelValues(string(alg), kind).Inc()
}
