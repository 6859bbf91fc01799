// Package metrics exposes context-tree observability through Prometheus: an
// Observer counting lifecycle events and a Collector reporting the live
// shape of a tree at scrape time.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aretw0/canopy"
)

// Observer records context lifecycle events as Prometheus metrics. Attach
// it per context of interest via Observe; one Observer may watch any number
// of contexts.
type Observer struct {
	contextsEnded      prometheus.Counter
	childContextsEnded prometheus.Counter
	lifetime           prometheus.Histogram
}

// NewObserver creates a metrics observer registered with reg. A nil reg
// defaults to the global registerer.
func NewObserver(reg prometheus.Registerer) *Observer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Observer{
		contextsEnded: factory.NewCounter(prometheus.CounterOpts{
			Name: "canopy_contexts_ended_total",
			Help: "Total observed contexts that completed their end sequence",
		}),
		childContextsEnded: factory.NewCounter(prometheus.CounterOpts{
			Name: "canopy_child_contexts_ended_total",
			Help: "Total ended children of observed contexts",
		}),
		lifetime: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "canopy_context_lifetime_seconds",
			Help:    "Lifetime of observed contexts from creation to ended",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30, 60, 300, 1800},
		}),
	}
}

// ContextEnding is a no-op; only completed lifecycles are recorded.
func (m *Observer) ContextEnding(*canopy.Context) {}

// ContextEnded counts the ended context and observes its lifetime.
func (m *Observer) ContextEnded(ctx *canopy.Context) {
	m.contextsEnded.Inc()
	m.lifetime.Observe(time.Since(ctx.CreatedAt()).Seconds())
}

// ChildContextEnding is a no-op; only completed lifecycles are recorded.
func (m *Observer) ChildContextEnding(*canopy.Context) {}

// ChildContextEnded counts the ended child.
func (m *Observer) ChildContextEnded(*canopy.Context) {
	m.childContextsEnded.Inc()
}
