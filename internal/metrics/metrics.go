package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "groupmart_orders_created_total",
		Help: "Total number of group orders created",
	})

	JoinsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "groupmart_joins_total",
		Help: "Total number of successful order joins",
	})

	JoinsFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "groupmart_joins_failed_total",
		Help: "Total number of failed order joins",
	}, []string{"reason"})

	PaymentsVerifiedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "groupmart_payments_verified_total",
		Help: "Total number of verified participant payments",
	})

	PaymentsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "groupmart_payments_rejected_total",
		Help: "Total number of rejected participant payments",
	})

	CheckoutSessionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "groupmart_checkout_sessions_total",
		Help: "Total number of hosted checkout sessions created",
	})
)
