package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PaymentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "payment",
			Name:      "attempts_total",
			Help:      "Checkout payment attempts by method and result",
		},
		[]string{"method", "result"},
	)

	RefundsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "checkout",
			Subsystem: "refund",
			Name:      "attempts_total",
			Help:      "Refund attempts by method and result",
		},
		[]string{"method", "result"},
	)

	GatewayRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "checkout",
			Subsystem: "gateway",
			Name:      "request_duration_seconds",
			Help:      "Payment gateway round trip latency in seconds",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation", "status"},
	)
)

func init() {
	Registry.MustRegister(PaymentsTotal, RefundsTotal, GatewayRequestDuration)
}

// ObservePayment counts one checkout payment attempt.
func ObservePayment(method, result string) {
	PaymentsTotal.WithLabelValues(method, result).Inc()
}

// ObserveRefund counts one refund attempt.
func ObserveRefund(method, result string) {
	RefundsTotal.WithLabelValues(method, result).Inc()
}
