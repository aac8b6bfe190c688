// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gestor"

// Installment outcomes
const (
	OutcomeApplied  = "applied"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds a private registry and the collectors registered on it.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpDuration  *prometheus.HistogramVec
	installments  *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// New creates the collectors on a fresh registry
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route and status.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		installments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "installments_total",
				Help:      "Installment applications by outcome.",
			},
			[]string{"outcome"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Notification deliveries by sink and outcome.",
			},
			[]string{"sink", "outcome"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpDuration,
		m.installments,
		m.notifications,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one served HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
}

// ObserveInstallment counts an installment attempt
func (m *Metrics) ObserveInstallment(outcome string) {
	if m == nil {
		return
	}
	m.installments.WithLabelValues(outcome).Inc()
}

// ObserveNotification counts one delivery attempt of a sink
func (m *Metrics) ObserveNotification(sink string, err error) {
	if m == nil {
		return
	}
	outcome := "sent"
	if err != nil {
		outcome = "failed"
	}
	m.notifications.WithLabelValues(sink, outcome).Inc()
}
