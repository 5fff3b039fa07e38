// Package metrics defines all custom Prometheus metrics for the recruitment
// API. It is the single source of truth for metric names, labels, and help
// strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recruitment"

// AccountsRegisteredTotal counts account creations.
// Labels:
//   - role: the created account's role (e.g. "student", "company")
//   - source: "self" for self-registration, "roster" for accounts a college
//     created on someone's behalf
var AccountsRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_registered_total",
		Help:      "Total number of accounts created, by role and source.",
	},
	[]string{"role", "source"},
)

// ImportRowsTotal counts bulk-import rows by outcome.
// Label:
//   - result: "created" or "failed"
var ImportRowsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "import_rows_total",
		Help:      "Total number of bulk onboarding rows processed, by result.",
	},
	[]string{"result"},
)

// PartnershipResponsesTotal counts partnership decisions.
// Label:
//   - decision: "accept" or "reject"
var PartnershipResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "partnership_responses_total",
		Help:      "Total number of partnership requests responded to, by decision.",
	},
	[]string{"decision"},
)

// JobsCreatedTotal counts job drives opened by companies.
var JobsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_created_total",
		Help:      "Total number of job drives created.",
	},
)

// ActivityQueueDepth tracks the entries waiting in each audit worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
