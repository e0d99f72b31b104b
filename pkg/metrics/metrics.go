package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration  *prometheus.HistogramVec
	DBQueryErrors    *prometheus.CounterVec
	DBOpenConns      prometheus.Gauge
	DBInUseConns     prometheus.Gauge
	DBIdleConns      prometheus.Gauge
	DBWaitCountTotal prometheus.Gauge

	CacheOperations *prometheus.CounterVec
	Invalidations   *prometheus.CounterVec

	AvailabilityDuration prometheus.Histogram
	SlotsByStatus        *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре (тот, что отдает promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в переданном реестре (удобно для тестов)
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: labels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBQueryErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Database query errors",
			ConstLabels: labels,
		}, []string{"operation"}),
		DBOpenConns: f.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Open connections in the pool",
			ConstLabels: labels,
		}),
		DBInUseConns: f.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Connections currently in use",
			ConstLabels: labels,
		}),
		DBIdleConns: f.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Idle connections in the pool",
			ConstLabels: labels,
		}),
		DBWaitCountTotal: f.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),

		CacheOperations: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_cache_operations_total",
			Help:        "Room/table cache lookups by result",
			ConstLabels: labels,
		}, []string{"operation", "result"}),
		Invalidations: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_cache_invalidations_total",
			Help:        "Cache invalidations by triggering event",
			ConstLabels: labels,
		}, []string{"event", "source"}),

		AvailabilityDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:        "availability_find_slots_duration_seconds",
			Help:        "Time spent computing availability for one day",
			ConstLabels: labels,
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
		SlotsByStatus: f.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_slots_total",
			Help:        "Computed slots by resulting status",
			ConstLabels: labels,
		}, []string{"status"}),
	}
}

// ObserveAvailability фиксирует длительность расчета и распределение статусов слотов
func (m *Metrics) ObserveAvailability(duration time.Duration, statuses map[string]int) {
	if m == nil {
		return
	}
	m.AvailabilityDuration.Observe(duration.Seconds())
	for status, n := range statuses {
		m.SlotsByStatus.WithLabelValues(status).Add(float64(n))
	}
}

// ObserveCache фиксирует результат операции с кешем (hit, miss, error, ...)
func (m *Metrics) ObserveCache(operation, result string) {
	if m == nil {
		return
	}
	m.CacheOperations.WithLabelValues(operation, result).Inc()
}

// ObserveInvalidation фиксирует сброс кеша
func (m *Metrics) ObserveInvalidation(event, source string) {
	if m == nil {
		return
	}
	m.Invalidations.WithLabelValues(event, source).Inc()
}
