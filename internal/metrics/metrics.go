// Package metrics defines and registers all custom Prometheus metrics for
// the geobridge library. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the host application decides whether and where to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "geobridge"

// EventsPublishedTotal counts events published by the adapter, before
// fan-out to subscribers.
// Label:
//   - kind: the event discriminator (e.g. "locations_updated")
var EventsPublishedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_published_total",
		Help:      "Total number of events published by the event adapter.",
	},
	[]string{"kind"},
)

// EventsDeliveredTotal counts per-subscriber deliveries. One publish to N
// subscribers increments this N times.
// Label:
//   - kind: the event discriminator
var EventsDeliveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_delivered_total",
		Help:      "Total number of per-subscriber event deliveries.",
	},
	[]string{"kind"},
)

// EventsDroppedTotal counts events discarded because a subscriber's buffer
// was full. A stalled consumer loses events rather than stalling the rest.
// Label:
//   - kind: the event discriminator
var EventsDroppedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dropped_total",
		Help:      "Total number of events dropped due to a full subscriber buffer.",
	},
	[]string{"kind"},
)

// Subscribers tracks the current number of registered event subscribers.
var Subscribers = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "subscribers",
		Help:      "Current number of registered event subscribers.",
	},
)
