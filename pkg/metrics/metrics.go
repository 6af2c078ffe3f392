// Package metrics exposes the payment counters scraped from /metrics.
package metrics

import (
	"github.com/dwnGnL/paymentService/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	paymentsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_created_total",
		Help: "Number of payments created, by payment type.",
	}, []string{"type"})

	paymentsCanceled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payments_canceled_total",
		Help: "Number of payments canceled, by payment type.",
	}, []string{"type"})

	cancellationFees = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_cancellation_fees_total",
		Help: "Sum of charged cancellation fees, by currency.",
	}, []string{"currency"})

	activePayments = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "payments_active",
		Help: "Payments not canceled, as of the last stats refresh.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "route", "status"})
)

func PaymentCreated(p models.Payment) {
	paymentsCreated.WithLabelValues(string(p.PaymentType)).Inc()
}

func PaymentCanceled(p models.Payment) {
	paymentsCanceled.WithLabelValues(string(p.PaymentType)).Inc()
	fee, _ := p.CancellationFee.Float64()
	cancellationFees.WithLabelValues(string(p.Currency)).Add(fee)
}

func SetActivePayments(n int64) {
	activePayments.Set(float64(n))
}

func Request(method, route, status string) {
	httpRequests.WithLabelValues(method, route, status).Inc()
}
