// Package metrics exposes prometheus collectors for the analytics path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LogRecordsDecoded counts activity log records decoded successfully.
	LogRecordsDecoded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "restly",
		Subsystem: "activitylog",
		Name:      "records_decoded_total",
		Help:      "Number of activity log records decoded successfully.",
	})

	// LogRecordsSkipped counts malformed activity log lines that were skipped.
	LogRecordsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "restly",
		Subsystem: "activitylog",
		Name:      "records_skipped_total",
		Help:      "Number of malformed activity log lines skipped during load.",
	})

	// LogReadFailures counts log reads that degraded to an empty day.
	LogReadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "restly",
		Subsystem: "activitylog",
		Name:      "read_failures_total",
		Help:      "Number of log reads that failed and degraded to an empty day.",
	})

	// SummaryRequests counts AI summary attempts by outcome (ok, fallback, error).
	SummaryRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "restly",
		Subsystem: "ai",
		Name:      "summary_requests_total",
		Help:      "Number of AI summary attempts by outcome.",
	}, []string{"outcome"})
)
