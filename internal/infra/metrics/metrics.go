// Package metrics exposes Prometheus counters for the directory core.
package metrics

import (
	"net/http"

	"atlas/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the application counters with their private registry.
type Metrics struct {
	registry *prometheus.Registry

	// Searches counts directory search requests.
	Searches prometheus.Counter

	// Notifications counts dispatched notifications by channel and final status.
	Notifications *prometheus.CounterVec
}

// New creates a Metrics instance backed by a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		Searches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "atlas",
			Name:      "profile_searches_total",
			Help:      "Total number of directory profile searches.",
		}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atlas",
			Name:      "notifications_total",
			Help:      "Total number of dispatched notifications by channel and status.",
		}, []string{"channel", "status"}),
	}

	registry.MustRegister(
		m.Searches,
		m.Notifications,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ObserveSearch records one directory search.
func (m *Metrics) ObserveSearch() {
	if m == nil {
		return
	}
	m.Searches.Inc()
}

// ObserveNotification records the final status of one notification.
func (m *Metrics) ObserveNotification(channel entity.NotificationChannel, status entity.NotificationStatus) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(channel.String(), status.String()).Inc()
}

// Handler returns the scrape endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
