package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	ContactsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "contacts_total",
			Help: "Total contact form submissions stored",
		},
	)
	NotificationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_failures_total",
			Help: "Total contact notification emails that failed to send",
		},
	)

	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)
)

// handler for the /metrics endpoint
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(ContactsTotal)
	prometheus.MustRegister(NotificationFailures)
	prometheus.MustRegister(WorkerQueueDepth)
}
