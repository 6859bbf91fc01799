package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/canopy"
	"github.com/aretw0/canopy/pkg/traversal"
)

var treeDesc = prometheus.NewDesc(
	"canopy_tree_contexts",
	"Contexts currently reachable from the collector's root, by state",
	[]string{"state"},
	nil,
)

// TreeCollector is a prometheus.Collector that walks a context tree at
// scrape time and reports how many contexts sit in each lifecycle state.
// The walk covers the root and all of its descendants.
type TreeCollector struct {
	root *canopy.Context
}

// NewTreeCollector creates a collector over the tree rooted at root.
func NewTreeCollector(root *canopy.Context) *TreeCollector {
	return &TreeCollector{root: root}
}

// Describe implements prometheus.Collector.
func (t *TreeCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- treeDesc
}

// Collect implements prometheus.Collector.
func (t *TreeCollector) Collect(ch chan<- prometheus.Metric) {
	counts := make(map[canopy.State]float64, 3)
	traversal.Traverse(traversal.SelfOrDescendant, t.root, func(ctx *canopy.Context) bool {
		counts[ctx.State()]++
		return true
	})
	for _, state := range []canopy.State{canopy.StateActive, canopy.StateEnding, canopy.StateEnded} {
		ch <- prometheus.MustNewConstMetric(
			treeDesc,
			prometheus.GaugeValue,
			counts[state],
			state.String(),
		)
	}
}
