package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkflowTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_application_transitions_total",
			Help: "Total number of loan application workflow transitions applied",
		},
		[]string{"event"},
	)

	WorkflowTransitionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "loan_application_transitions_rejected_total",
			Help: "Total number of workflow transitions rejected by the state guard",
		},
		[]string{"event"},
	)

	LedgerOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_ledger_operations_total",
			Help: "Total number of payment ledger operations committed",
		},
		[]string{"op"},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of outbound notifications, by kind and outcome",
		},
		[]string{"kind", "status"},
	)
)
