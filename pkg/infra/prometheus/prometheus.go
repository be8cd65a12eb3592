package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Scan latency buckets in milliseconds. Detection is pure computation, so
	// the interesting range is sub-millisecond to low tens of milliseconds.
	scanLatencyBuckets = []float64{
		0.1, 0.25, 0.5,
		1, 2.5, 5,
		10, 25, 50,
		100,
	}

	ViolationsDetectedTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_violations_detected_total",
			Help: "Total number of violations detected, by category and severity",
		},
		[]string{"category", "severity"},
	)

	ScansTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_scans_total",
			Help: "Total number of messages scanned, by outcome",
		},
		[]string{"outcome"}, // clean, violation, suppressed
	)

	ScanLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moderation_scan_latency_ms",
			Help:    "Message scan latency in milliseconds",
			Buckets: scanLatencyBuckets,
		},
		[]string{"mode"}, // strict or confidence
	)

	PatternsDetectedTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_patterns_detected_total",
			Help: "Total number of behavioral patterns detected and persisted",
		},
		[]string{"pattern_type"},
	)

	PatternChecksFailedTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_pattern_checks_failed_total",
			Help: "Total number of pattern checks that failed against the store",
		},
		[]string{"check"},
	)
)

func init() {
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

func Registry() *prometheus.Registry {
	return registry
}
