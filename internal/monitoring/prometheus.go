package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus collectors served from the metrics port.
var (
	OrdersCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_orders_created_total",
		Help: "Number of orders created, by fulfillment type.",
	}, []string{"type"})

	PaymentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_payments_processed_total",
		Help: "Number of payments processed, by method.",
	}, []string{"method"})

	RevenueCollected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_revenue_collected_total",
		Help: "Sum of paid order totals.",
	})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_order_status_transitions_total",
		Help: "Number of order status transitions, by target status.",
	}, []string{"status"})
)
