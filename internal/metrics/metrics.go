package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitstat_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitstat_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitstat_class_bookings_total",
			Help: "Total number of class bookings",
		},
		[]string{"status"},
	)

	PaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitstat_payments_total",
			Help: "Total number of payment confirmations",
		},
		[]string{"status"},
	)

	PaymentAmountCents = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitstat_payment_amount_cents_total",
			Help: "Total confirmed payment volume in minor units",
		},
	)

	RefundsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitstat_refunds_total",
			Help: "Total number of refunds",
		},
	)

	TrainerApplicationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitstat_trainer_applications_total",
			Help: "Total number of trainer applications",
		},
		[]string{"outcome"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitstat_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitstat_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	NewsletterSubscriptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitstat_newsletter_subscriptions_total",
			Help: "Total number of newsletter subscribe/unsubscribe events",
		},
		[]string{"action"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(status string) {
	BookingsTotal.WithLabelValues(status).Inc()
}

func RecordPayment(status string, amountCents int64) {
	PaymentsTotal.WithLabelValues(status).Inc()
	if status == "completed" && amountCents > 0 {
		PaymentAmountCents.Add(float64(amountCents))
	}
}

func RecordRefund() {
	RefundsTotal.Inc()
}

func RecordTrainerApplication(outcome string) {
	TrainerApplicationsTotal.WithLabelValues(outcome).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordNewsletter(action string) {
	NewsletterSubscriptionsTotal.WithLabelValues(action).Inc()
}
