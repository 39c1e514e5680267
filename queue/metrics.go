package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "mxecall"
	subsystem        = "queue"
)

type metrics struct {
	validationsTotal *prometheus.CounterVec
	dispatchTotal    *prometheus.CounterVec
	dispatchDuration prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		validationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: subsystem,
				Name:      "validations_total",
				Help:      "Total number of argument validations before dispatch",
			},
			[]string{"result"}, // result: "accept", "reject"
		),
		dispatchTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: subsystem,
				Name:      "dispatch_total",
				Help:      "Total number of dispatched computation requests",
			},
			[]string{"status"}, // status: "success", "error"
		),
		dispatchDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: subsystem,
				Name:      "dispatch_duration_seconds",
				Help:      "Time taken to hand a request to the dispatcher",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}
