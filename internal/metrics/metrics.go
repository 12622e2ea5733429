package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	PointOpsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "points_operations_total",
			Help: "Point operations applied to a balance",
		},
		[]string{"op"}, // CHARGE|USE
	)
	PointRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "points_rejections_total",
			Help: "Point operations rejected by a balance rule",
		},
		[]string{"op", "reason"},
	)
	PointOpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "points_operation_duration_seconds",
			Help:    "Time spent inside a point operation including lock wait",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
	LocksInUse = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "points_user_locks_in_use",
			Help: "Per-user locks currently held or awaited",
		},
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	WorkerDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "worker_dropped_tasks_total",
			Help: "Tasks dropped because the worker queue was full",
		},
	)

	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	initOnce sync.Once
)

// Handler serves /metrics.
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call more
// than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(PointOpsTotal, PointRejections, PointOpDuration, LocksInUse, WorkerQueueDepth, WorkerDroppedTotal, HTTPLatency)
	})
}
