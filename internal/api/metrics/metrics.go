// Package metrics defines and registers all custom Prometheus metrics for the
// laborer API. It is the single source of truth for metric names, labels, and
// help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "laborercms"

// LaborersCreatedTotal counts created laborer records.
// Label:
//   - role: "user", "admin", or "supervisor"
var LaborersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "laborers_created_total",
		Help:      "Total number of laborer records created, by role.",
	},
	[]string{"role"},
)

// LaborersUpdatedTotal counts successful record updates.
var LaborersUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "laborers_updated_total",
		Help:      "Total number of laborer records updated.",
	},
)

// PicturesStoredTotal counts accepted picture uploads.
var PicturesStoredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pictures_stored_total",
		Help:      "Total number of profile pictures stored.",
	},
)

// PictureCleanupFailuresTotal counts failed deletion attempts of replaced
// picture files, including janitor retries.
var PictureCleanupFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "picture_cleanup_failures_total",
		Help:      "Total number of failed picture deletion attempts.",
	},
)

// PictureCleanupQueueDepth tracks the number of picture paths waiting for a
// retried deletion.
var PictureCleanupQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "picture_cleanup_queue_depth",
		Help:      "Current number of picture paths pending retried deletion.",
	},
)
