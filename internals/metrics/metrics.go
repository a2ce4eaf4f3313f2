// Package metrics holds the process-wide Prometheus collectors served on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ExeatRequestsSubmitted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "exeat_requests_submitted_total",
			Help: "Exeat requests accepted in PENDING state",
		},
	)

	ExeatSubmissionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exeat_submissions_rejected_total",
			Help: "Submissions refused before persistence, by reason",
		},
		[]string{"reason"}, // validation | blackout
	)

	ExeatTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exeat_transitions_total",
			Help: "Committed transitions out of PENDING, by target status",
		},
		[]string{"status"},
	)

	ExeatTransitionConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "exeat_transition_conflicts_total",
			Help: "Transitions refused because the request was no longer PENDING",
		},
	)

	NotificationFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "exeat_notification_failures_total",
			Help: "In-app notifications that could not be persisted",
		},
	)

	EmailsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exeat_emails_total",
			Help: "Outbound emails by result",
		},
		[]string{"result"}, // sent | failed | dropped
	)

	EmailSendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "exeat_email_send_duration_seconds",
			Help:    "Time spent handing a message to the mail server",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
		},
	)
)
