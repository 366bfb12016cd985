package stubserver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "helpdesk_stub"

// complaintsCreatedTotal counts complaints filed against the stub, labelled
// by urgency so demo dashboards can show the triage mix.
var complaintsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "complaints_created_total",
		Help:      "Total number of complaints filed.",
	},
	[]string{"urgency"},
)

// statusChangesTotal counts status updates, labelled by the status applied.
var statusChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "status_changes_total",
		Help:      "Total number of complaint status updates.",
	},
	[]string{"status"},
)

// loginsTotal counts login attempts, labelled by outcome.
var loginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: metricsNamespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts.",
	},
	[]string{"outcome"},
)
