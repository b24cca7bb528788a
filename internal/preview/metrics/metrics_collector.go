package metrics

import (
	"time"

	"go.uber.org/zap"
)

// Update results
const (
	ResultRendered  = "rendered"
	ResultUnchanged = "unchanged"
	ResultSkipped   = "skipped"
)

// MetricsCollector centralizes all metrics recording for preview sessions
type MetricsCollector struct {
	prometheus *PrometheusMetrics
	logger     *zap.Logger
}

// NewMetricsCollector creates a new MetricsCollector instance
func NewMetricsCollector(namespace string, logger *zap.Logger) *MetricsCollector {
	return &MetricsCollector{
		prometheus: NewPrometheusMetrics(namespace, logger),
		logger:     logger,
	}
}

// RecordRendered records an update that changed the preview
func (mc *MetricsCollector) RecordRendered() {
	mc.prometheus.RecordUpdate(ResultRendered)
}

// RecordUnchanged records an update that produced the already rendered preview
func (mc *MetricsCollector) RecordUnchanged() {
	mc.prometheus.RecordUpdate(ResultUnchanged)
}

// RecordSkipped records an update skipped because the editor was not ready
func (mc *MetricsCollector) RecordSkipped() {
	mc.prometheus.RecordUpdate(ResultSkipped)
}

// RecordTruncation records a description shortened from field
func (mc *MetricsCollector) RecordTruncation(field string) {
	mc.prometheus.RecordTruncation(field)
}

// RecordRenderMiss records a write to a missing edit screen element
func (mc *MetricsCollector) RecordRenderMiss(element string) {
	mc.prometheus.RecordRenderMiss(element)
	mc.logger.Debug("Recorded render miss", zap.String("element", element))
}

// RecordSummarizeDuration records how long summarizing took
func (mc *MetricsCollector) RecordSummarizeDuration(d time.Duration) {
	mc.prometheus.ObserveSummarizeDuration(d.Seconds())
}

// WriteTextfile exports the current metrics to path
func (mc *MetricsCollector) WriteTextfile(path string) error {
	return mc.prometheus.WriteTextfile(path)
}
