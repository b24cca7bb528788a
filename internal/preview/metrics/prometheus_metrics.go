package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// PrometheusMetrics holds the Prometheus collectors of the preview session
type PrometheusMetrics struct {
	updatesTotal      *prometheus.CounterVec
	truncationsTotal  *prometheus.CounterVec
	renderMissesTotal *prometheus.CounterVec
	summarizeDuration prometheus.Histogram

	gatherer prometheus.Gatherer
	logger   *zap.Logger
}

// NewPrometheusMetrics creates a collector set registered with a private registry
func NewPrometheusMetrics(namespace string, logger *zap.Logger) *PrometheusMetrics {
	return NewPrometheusMetricsWithRegistry(namespace, prometheus.NewRegistry(), logger)
}

// NewPrometheusMetricsWithRegistry creates a collector set registered with registry
func NewPrometheusMetricsWithRegistry(namespace string, registry *prometheus.Registry, logger *zap.Logger) *PrometheusMetrics {
	pm := &PrometheusMetrics{
		gatherer: registry,
		logger:   logger,
	}

	pm.updatesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "preview",
		Name:      "updates_total",
		Help:      "Total preview updates by result",
	}, []string{"result"}) // result: rendered, unchanged, skipped

	pm.truncationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "preview",
		Name:      "truncations_total",
		Help:      "Total descriptions shortened to the description budget",
	}, []string{"field"}) // field: content, excerpt

	pm.renderMissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "preview",
		Name:      "render_misses_total",
		Help:      "Total writes skipped because the target element was missing",
	}, []string{"element"})

	pm.summarizeDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "preview",
		Name:      "summarize_duration_seconds",
		Help:      "Time spent summarizing post content",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8), // 10us to ~160ms
	})

	registry.MustRegister(
		pm.updatesTotal,
		pm.truncationsTotal,
		pm.renderMissesTotal,
		pm.summarizeDuration,
	)

	return pm
}

// RecordUpdate records a preview update outcome
func (pm *PrometheusMetrics) RecordUpdate(result string) {
	pm.updatesTotal.WithLabelValues(result).Inc()
}

// RecordTruncation records a shortened description
func (pm *PrometheusMetrics) RecordTruncation(field string) {
	pm.truncationsTotal.WithLabelValues(field).Inc()
}

// RecordRenderMiss records a write to a missing element
func (pm *PrometheusMetrics) RecordRenderMiss(element string) {
	pm.renderMissesTotal.WithLabelValues(element).Inc()
}

// ObserveSummarizeDuration records summarize duration
func (pm *PrometheusMetrics) ObserveSummarizeDuration(seconds float64) {
	pm.summarizeDuration.Observe(seconds)
}

// WriteTextfile writes all metrics in text exposition format for the
// node-exporter textfile collector. The file is replaced atomically.
func (pm *PrometheusMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, pm.gatherer)
}
