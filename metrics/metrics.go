package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const metricNamespace = "movable"

// Counters.
var (
	//nolint:gochecknoglobals
	nodeAllocatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "node_allocated_total",
		Help:      "Total number of list nodes allocated.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	nodeReleasedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "node_released_total",
		Help:      "Total number of list nodes released.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	headInsertTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "head_insert_total",
		Help:      "Total number of head insertions.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	moveConstructTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "move_construct_total",
		Help:      "Total number of move constructions.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	moveAssignTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "move_assign_total",
		Help:      "Total number of move assignments.",
		Namespace: metricNamespace,
	})

	//nolint:gochecknoglobals
	annexedElementsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name:      "annexed_elements_total",
		Help:      "Total number of sequence elements annexed by ownership transfers.",
		Namespace: metricNamespace,
	})
)

// Init registers the metrics. Runtime collectors are skipped when disabled
// by configuration.
func Init(reg prometheus.Registerer, runtimeMetrics bool) {
	if runtimeMetrics {
		reg.MustRegister(collectors.NewGoCollector())
		reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
			Namespace: metricNamespace,
		}))
	}

	reg.MustRegister(
		nodeAllocatedTotal,
		nodeReleasedTotal,
		headInsertTotal,

		moveConstructTotal,
		moveAssignTotal,
		annexedElementsTotal,
	)
}

// AddNodeAllocated increments the total count of allocated list nodes.
func AddNodeAllocated(v int) {
	nodeAllocatedTotal.Add(float64(v))
}

// AddNodeReleased increments the total count of released list nodes.
func AddNodeReleased(v int) {
	nodeReleasedTotal.Add(float64(v))
}

// IncHeadInsert increments the total count of head insertions.
func IncHeadInsert() {
	headInsertTotal.Inc()
}

// IncMoveConstruct increments the total count of move constructions.
func IncMoveConstruct() {
	moveConstructTotal.Inc()
}

// IncMoveAssign increments the total count of move assignments.
func IncMoveAssign() {
	moveAssignTotal.Inc()
}

// AddAnnexedElements increments the total count of annexed sequence elements.
func AddAnnexedElements(v int) {
	annexedElementsTotal.Add(float64(v))
}
