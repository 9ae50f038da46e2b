package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	registrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "waitlist_registrations_total",
		Help: "Successful waiting list registrations",
	})
	verificationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "waitlist_verifications_total",
		Help: "Successful email verifications",
	})
	notificationFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waitlist_notification_failures_total",
		Help: "Notifications that could not be handed to the email notifier",
	}, []string{"kind"})
)
