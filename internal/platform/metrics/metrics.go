package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the alert service.
type Metrics struct {
	AlertsTriggered  prometheus.Counter
	ContactsCreated  prometheus.Counter
	ContactsDeleted  prometheus.Counter
	NotifiedPerAlert prometheus.Histogram
	RequestDuration  *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		AlertsTriggered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "safesignal_alerts_triggered_total",
			Help: "Total number of emergency alerts ingested",
		}),
		ContactsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "safesignal_contacts_created_total",
			Help: "Total number of emergency contacts created",
		}),
		ContactsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "safesignal_contacts_deleted_total",
			Help: "Total number of emergency contacts deleted",
		}),
		NotifiedPerAlert: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "safesignal_notified_contacts_per_alert",
			Help:    "Size of the notified snapshot captured per alert",
			Buckets: []float64{0, 1, 2, 5, 10, 25},
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "safesignal_http_request_duration_seconds",
			Help:    "HTTP request latency by path and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "status"}),
	}
}

// ObserveAlert records one ingested alert and its notified snapshot size.
func (m *Metrics) ObserveAlert(notified int) {
	m.AlertsTriggered.Inc()
	m.NotifiedPerAlert.Observe(float64(notified))
}
