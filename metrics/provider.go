// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricsNamespace    = "reporeply"
	cronNamespace       = "cron"
	providerNamespace   = "provider"
	reminderNamespace   = "reminders"
	inactivityNamespace = "inactivity"
	alertNamespace      = "alerts"

	defaultPrometheusTimeoutSeconds = 60
)

type Provider interface {
	ObserveProviderRequestDuration(host, method, handler, statusCode string, elapsed float64)
	IncreaseProviderCacheHits(method, handler string)
	IncreaseProviderCacheMisses(method, handler string)

	ObserveCronTaskDuration(name string, elapsed float64)
	IncreaseCronTaskErrors(name string)

	IncreaseRemindersDelivered(provider string)
	IncreaseReminderFailures(provider, class string)
	IncreaseRemindersQuarantined(reason string)

	IncreaseInactivityActions(action string)

	IncreaseAlerts(result string)
}

type PrometheusProvider struct {
	Registry *prometheus.Registry

	cronTasksDuration *prometheus.HistogramVec
	cronTasksErrors   *prometheus.CounterVec

	providerRequests    *prometheus.HistogramVec
	providerCacheHits   *prometheus.CounterVec
	providerCacheMisses *prometheus.CounterVec

	remindersDelivered   *prometheus.CounterVec
	reminderFailures     *prometheus.CounterVec
	remindersQuarantined *prometheus.CounterVec

	inactivityActions *prometheus.CounterVec

	alerts *prometheus.CounterVec
}

func NewPrometheusProvider() *PrometheusProvider {
	provider := &PrometheusProvider{}
	provider.Registry = prometheus.NewRegistry()
	options := prometheus.ProcessCollectorOpts{
		Namespace: metricsNamespace,
	}
	provider.Registry.MustRegister(prometheus.NewProcessCollector(options))
	provider.Registry.MustRegister(prometheus.NewGoCollector())

	provider.cronTasksDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: cronNamespace,
			Name:      "tasks",
			Help:      "Duration for the executed cron tasks.",
		},
		[]string{"name"},
	)
	provider.Registry.MustRegister(provider.cronTasksDuration)

	provider.cronTasksErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: cronNamespace,
			Name:      "errors",
			Help:      "Number of failed cron tasks.",
		},
		[]string{"name"},
	)
	provider.Registry.MustRegister(provider.cronTasksErrors)

	provider.providerRequests = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: providerNamespace,
			Name:      "requests",
			Help:      "Duration of the performed issue tracker http requests.",
		},
		[]string{"host", "method", "handler", "status_code"},
	)
	provider.Registry.MustRegister(provider.providerRequests)

	provider.providerCacheHits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: providerNamespace,
			Name:      "cache_hits",
			Help:      "Number of cache hits for requested method and handler.",
		},
		[]string{"method", "handler"},
	)
	provider.Registry.MustRegister(provider.providerCacheHits)

	provider.providerCacheMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: providerNamespace,
			Name:      "cache_miss",
			Help:      "Number of cache misses for requested method and handler.",
		},
		[]string{"method", "handler"},
	)
	provider.Registry.MustRegister(provider.providerCacheMisses)

	provider.remindersDelivered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: reminderNamespace,
			Name:      "delivered",
			Help:      "Number of reminders delivered.",
		},
		[]string{"provider"},
	)
	provider.Registry.MustRegister(provider.remindersDelivered)

	provider.reminderFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: reminderNamespace,
			Name:      "failures",
			Help:      "Number of failed reminder deliveries by error class.",
		},
		[]string{"provider", "class"},
	)
	provider.Registry.MustRegister(provider.reminderFailures)

	provider.remindersQuarantined = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: reminderNamespace,
			Name:      "quarantined",
			Help:      "Number of reminders retired without delivery.",
		},
		[]string{"reason"},
	)
	provider.Registry.MustRegister(provider.remindersQuarantined)

	provider.inactivityActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: inactivityNamespace,
			Name:      "actions",
			Help:      "Number of inactivity warnings, closes and resets.",
		},
		[]string{"action"},
	)
	provider.Registry.MustRegister(provider.inactivityActions)

	provider.alerts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: alertNamespace,
			Name:      "total",
			Help:      "Number of failure alerts sent or dropped by the throttle.",
		},
		[]string{"result"},
	)
	provider.Registry.MustRegister(provider.alerts)

	return provider
}

func (p *PrometheusProvider) ObserveProviderRequestDuration(host, method, handler, statusCode string, elapsed float64) {
	p.providerRequests.With(
		prometheus.Labels{"host": host, "method": method, "handler": handler, "status_code": statusCode},
	).Observe(elapsed)
}

func (p *PrometheusProvider) IncreaseProviderCacheHits(method, handler string) {
	p.providerCacheHits.WithLabelValues(method, handler).Add(1)
}

func (p *PrometheusProvider) IncreaseProviderCacheMisses(method, handler string) {
	p.providerCacheMisses.WithLabelValues(method, handler).Add(1)
}

func (p *PrometheusProvider) ObserveCronTaskDuration(name string, elapsed float64) {
	p.cronTasksDuration.With(prometheus.Labels{"name": name}).Observe(elapsed)
}

func (p *PrometheusProvider) IncreaseCronTaskErrors(name string) {
	p.cronTasksErrors.WithLabelValues(name).Add(1)
}

func (p *PrometheusProvider) IncreaseRemindersDelivered(provider string) {
	p.remindersDelivered.WithLabelValues(provider).Add(1)
}

func (p *PrometheusProvider) IncreaseReminderFailures(provider, class string) {
	p.reminderFailures.WithLabelValues(provider, class).Add(1)
}

func (p *PrometheusProvider) IncreaseRemindersQuarantined(reason string) {
	p.remindersQuarantined.WithLabelValues(reason).Add(1)
}

func (p *PrometheusProvider) IncreaseInactivityActions(action string) {
	p.inactivityActions.WithLabelValues(action).Add(1)
}

func (p *PrometheusProvider) IncreaseAlerts(result string) {
	p.alerts.WithLabelValues(result).Add(1)
}

func (p *PrometheusProvider) Handler() Handler {
	handler := promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{
		Timeout:           time.Duration(defaultPrometheusTimeoutSeconds) * time.Second,
		EnableOpenMetrics: true,
	})
	return Handler{
		Path:        "/metrics",
		Description: "Prometheus Metrics",
		Handler:     handler,
	}
}
