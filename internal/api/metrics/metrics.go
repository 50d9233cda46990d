// Package metrics defines and registers all custom Prometheus metrics for
// the creator studio service. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lamare"

// ── Navigation metrics ────────────────────────────────────────────────────────

// NavigationIntentsTotal counts navigation intents received over the API.
// Labels:
//   - target: the requested view (e.g. "DASHBOARD")
//   - result: "applied", "blocked", or "invalid"
var NavigationIntentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "navigation_intents_total",
		Help:      "Total number of navigation intents, by target view and result.",
	},
	[]string{"target", "result"},
)

// SessionEventsTotal counts session lifecycle transitions.
// Label:
//   - event: "login", "demo_login", "logout", "signup", "verified", "restored"
var SessionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_events_total",
		Help:      "Total number of session lifecycle events.",
	},
	[]string{"event"},
)

// ── Planner metrics ───────────────────────────────────────────────────────────

// TasksScheduledTotal counts planner tasks added.
// Labels:
//   - type: task type (e.g. "VIDEO")
//   - platform: destination platform (e.g. "TikTok")
var TasksScheduledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_scheduled_total",
		Help:      "Total number of planner tasks scheduled, by type and platform.",
	},
	[]string{"type", "platform"},
)

// ── Generation metrics ────────────────────────────────────────────────────────

// GenerationRequestsTotal counts generation requests submitted to the
// dispatcher, by workflow kind.
var GenerationRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_requests_total",
		Help:      "Total number of content generation requests submitted.",
	},
	[]string{"kind"},
)

// GenerationFallbacks counts requests that degraded to the fixed fallback
// message after a collaborator failure.
var GenerationFallbacks = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_fallbacks_total",
		Help:      "Total number of generation requests that used the fallback message.",
	},
	[]string{"kind"},
)

// GenerationDiscarded counts completed results dropped because a newer
// request for the same kind superseded them.
var GenerationDiscarded = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_discarded_total",
		Help:      "Total number of superseded generation results discarded.",
	},
	[]string{"kind"},
)

// GenerationQueueDepth tracks jobs waiting or running per workflow kind.
var GenerationQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "generation_queue_depth",
		Help:      "Current number of generation jobs pending in the dispatcher.",
	},
	[]string{"kind"},
)

// GenerationDuration measures collaborator round-trip time per kind.
var GenerationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Duration of generation job processing from dequeue to result.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"kind"},
)
