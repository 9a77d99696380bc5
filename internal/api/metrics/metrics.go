// Package metrics defines the custom Prometheus metrics for the
// portfolio resource API. It is the single source of truth for metric
// names, labels, and help strings; HTTP-level request metrics come from
// the echoprometheus middleware registered in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// ResourceWritesTotal counts mutations accepted by the resource store.
// Labels:
//   - resource: "services", "posts", "requests" or "users"
//   - action: "create", "update" or "delete"
var ResourceWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_writes_total",
		Help:      "Total number of accepted create/update/delete operations, by resource.",
	},
	[]string{"resource", "action"},
)

// ContactRequestsTotal counts contact-form submissions stored by the
// backend.
var ContactRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_requests_total",
		Help:      "Total number of contact requests submitted.",
	},
)

// RequestStatusChangesTotal counts request reviews.
// Label:
//   - status: the new status applied ("approved", "rejected", "pending")
var RequestStatusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "request_status_changes_total",
		Help:      "Total number of request status updates, by resulting status.",
	},
	[]string{"status"},
)
