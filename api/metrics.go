package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 服务指标
type Metrics struct {
	registry         *prometheus.Registry
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	calculations     *prometheus.CounterVec
	coordinationRuns *prometheus.CounterVec
}

// NewMetrics 创建独立注册表上的指标
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "protection_calculations_total",
			Help: "Total settings calculations by outcome (ok, invalid, error).",
		}, []string{"outcome"}),
		coordinationRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "protection_coordination_status_total",
			Help: "Overcurrent coordination results by status.",
		}, []string{"status"}),
	}
	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.calculations,
		m.coordinationRuns,
	)
	return m
}

// ObserveRequest 记录一次请求
func (m *Metrics) ObserveRequest(route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(d.Seconds())
}

// ObserveCalculation 记录计算结果
func (m *Metrics) ObserveCalculation(outcome string) {
	m.calculations.WithLabelValues(outcome).Inc()
}

// ObserveCoordination 记录配合状态
func (m *Metrics) ObserveCoordination(status string) {
	m.coordinationRuns.WithLabelValues(status).Inc()
}

// Handler 指标导出接口
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
