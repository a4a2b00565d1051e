package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameTaskStatusUpdates   = "task_status_updates"
	NameTaskStatusMutations = "task_status_mutations_in_flight"
	NameTaskGestures        = "task_gestures"
	LabelResult             = "result"
	LabelStatus             = "status"
	ResultSucceeded         = "succeeded"
	ResultFailed            = "failed"
	ResultIgnored           = "ignored"
	ResultDispatched        = "dispatched"
)

var TaskStatusUpdates = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTaskStatusUpdates,
		Help:      "Task status updates, by target status and result",
		Namespace: Namespace,
	},
	[]string{LabelStatus, LabelResult},
)

var TaskStatusMutations = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name:      NameTaskStatusMutations,
		Help:      "Task status mutations currently waiting for the store",
		Namespace: Namespace,
	},
)

var TaskGestures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameTaskGestures,
		Help:      "Board gestures, by outcome",
		Namespace: Namespace,
	},
	[]string{LabelResult},
)
