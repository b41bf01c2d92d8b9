package indexer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts ingestion activity for the /metrics endpoint.
type Metrics struct {
	EventsIngested *prometheus.CounterVec
	ParseFailures  prometheus.Counter
	ApplyFailures  prometheus.Counter
}

// NewMetrics registers the indexer counters on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		EventsIngested: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "votewatch_events_ingested_total",
			Help: "Event lines folded into the projection, by kind.",
		}, []string{"kind"}),
		ParseFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "votewatch_parse_failures_total",
			Help: "Event lines rejected by the parser.",
		}),
		ApplyFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "votewatch_apply_failures_total",
			Help: "Parsed events the store failed to apply.",
		}),
	}
}
