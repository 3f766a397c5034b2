// Package metrics defines and registers the custom Prometheus metrics for
// the HireHub API. It is the single source of truth for metric names, labels,
// and help strings; promauto registers everything with the default registry
// at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hirehub"

// RegistrationsTotal counts successful account registrations.
// Label:
//   - user_type: "job_seeker" or "employer"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by user type.",
	},
	[]string{"user_type"},
)

// JobsPostedTotal counts successfully created postings.
// Label:
//   - job_type: "full-time", "part-time", "contract", or "remote"
var JobsPostedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_posted_total",
		Help:      "Total number of jobs posted, by job type.",
	},
	[]string{"job_type"},
)

// ApplicationsSubmittedTotal counts successfully submitted applications.
var ApplicationsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_submitted_total",
		Help:      "Total number of job applications submitted.",
	},
)

// StatsCacheTotal counts dashboard stats cache lookups.
// Label:
//   - result: "hit" or "miss"
var StatsCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stats_cache_total",
		Help:      "Total number of dashboard stats cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
