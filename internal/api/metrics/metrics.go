// Package metrics defines and registers all custom Prometheus metrics for
// the EMS backend. It is the single source of truth for metric names,
// labels, and help strings. Registration happens at import time via
// promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ems"

// EntitiesCreatedTotal counts records created through the API.
// Label:
//   - kind: "employee", "client", or "project"
var EntitiesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_created_total",
		Help:      "Total number of records created, by kind.",
	},
	[]string{"kind"},
)

// EntitiesDeletedTotal counts records deleted through the API. Cascaded
// removals are not counted individually; only the entity the caller named.
// Label:
//   - kind: "employee", "client", or "project"
var EntitiesDeletedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entities_deleted_total",
		Help:      "Total number of records deleted, by kind.",
	},
	[]string{"kind"},
)

// AssignmentsTotal counts successful assignment-engine transitions.
// Label:
//   - action: "assign" or "release"
var AssignmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignments_total",
		Help:      "Total number of successful project assignment transitions, by action.",
	},
	[]string{"action"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
