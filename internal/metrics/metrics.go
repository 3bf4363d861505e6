// Package metrics provides Prometheus metrics for the dashboard service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	WidgetsCreated  *prometheus.CounterVec
	SyncFailures    *prometheus.CounterVec
	CacheFallbacks  prometheus.Counter
	InvitationsSent prometheus.Counter

	registry *prometheus.Registry
}

// New creates and registers all metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		WidgetsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_widgets_created_total",
				Help: "Total number of widgets created by widget type.",
			},
			[]string{"type"},
		),
		SyncFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_remote_sync_failures_total",
				Help: "Background remote store calls that failed, by operation.",
			},
			[]string{"op"},
		),
		CacheFallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dashboard_cache_fallbacks_total",
				Help: "Widget loads served from the local cache because the remote store was unreachable.",
			},
		),
		InvitationsSent: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "collaboration_invitations_sent_total",
				Help: "Total collaborator invitations sent.",
			},
		),
		registry: reg,
	}

	reg.MustRegister(m.WidgetsCreated, m.SyncFailures, m.CacheFallbacks, m.InvitationsSent)

	return m
}

// Handler returns the HTTP handler serving the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
