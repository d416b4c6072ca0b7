package monitor

import "github.com/prometheus/client_golang/prometheus"

var (
	framesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vrhal",
			Subsystem: "frame",
			Name:      "frames_total",
			Help:      "Total frames pumped through the backend",
		},
	)

	frameWaitDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "vrhal",
			Subsystem: "frame",
			Name:      "wait_duration_seconds",
			Help:      "Time spent blocked in the compositor pose wait",
			Buckets:   prometheus.DefBuckets,
		},
	)

	waitFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "vrhal",
			Subsystem: "frame",
			Name:      "wait_failures_total",
			Help:      "Waits recovered by reusing the previous snapshot",
		},
	)

	trackersActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "vrhal",
			Subsystem: "tracking",
			Name:      "trackers_active",
			Help:      "Device slots currently registered as connected",
		},
	)

	modelResolutionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vrhal",
			Subsystem: "rendermodel",
			Name:      "resolutions_total",
			Help:      "Render-model loads that reached a terminal state",
		},
		[]string{"state"},
	)
)

func init() {
	prometheus.MustRegister(framesTotal, frameWaitDuration, waitFailuresTotal,
		trackersActive, modelResolutionsTotal)
}
