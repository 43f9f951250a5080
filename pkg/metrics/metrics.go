package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса (HTTP + доменные счетчики)
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	enrollmentsTotal  *prometheus.CounterVec
	transactionsTotal *prometheus.CounterVec
}

// New регистрирует метрики в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "gym_http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "gym_http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "path"},
		),
		enrollmentsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "gym_enrollments_total",
				Help:        "Total number of schedule enrollments by resulting booking status",
				ConstLabels: constLabels,
			},
			[]string{"status"},
		),
		transactionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "gym_transactions_total",
				Help:        "Total number of payment transactions by type tag",
				ConstLabels: constLabels,
			},
			[]string{"type"},
		),
	}
}

// RecordHTTPRequest учитывает завершенный HTTP запрос
func (m *Metrics) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordEnrollment учитывает запись в расписание с итоговым статусом
// бронирования. Nil-безопасен: при выключенных метриках коллектора нет.
func (m *Metrics) RecordEnrollment(status string) {
	if m == nil {
		return
	}
	m.enrollmentsTotal.WithLabelValues(status).Inc()
}

// RecordTransaction учитывает платежную транзакцию по тегу типа.
// Nil-безопасен: при выключенных метриках коллектора нет.
func (m *Metrics) RecordTransaction(txType string) {
	if m == nil {
		return
	}
	m.transactionsTotal.WithLabelValues(txType).Inc()
}
