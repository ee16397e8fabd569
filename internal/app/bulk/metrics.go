package bulk

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Item outcomes
const (
	outcomeSucceeded  = "succeeded"
	outcomeFailed     = "failed"
	outcomeRolledBack = "rolled_back"
)

var itemsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "academics",
	Subsystem: "bulk",
	Name:      "items_total",
	Help:      "Items processed by bulk create, update and archive.",
}, []string{"entity", "op", "outcome"})

func observe(entity string, op Op, outcome string, n int) {
	if n > 0 {
		itemsProcessed.WithLabelValues(entity, string(op), outcome).Add(float64(n))
	}
}
