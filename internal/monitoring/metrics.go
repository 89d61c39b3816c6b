// Package monitoring records the duration and row counts of dataset
// operations.
package monitoring

import (
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"
)

// OperationMetrics represents performance metrics for a single operation.
type OperationMetrics struct {
	Duration      time.Duration `json:"duration"`
	RowsProcessed int64         `json:"rows_processed"`
	MemoryUsed    int64         `json:"memory_used"`
	Operation     string        `json:"operation"`
	Failed        bool          `json:"failed"`
}

// MetricsCollector collects and stores performance metrics.
type MetricsCollector struct {
	mu      sync.RWMutex
	metrics []OperationMetrics
	enabled bool
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector(enabled bool) *MetricsCollector {
	return &MetricsCollector{
		metrics: make([]OperationMetrics, 0),
		enabled: enabled,
	}
}

// IsEnabled returns whether metrics collection is enabled.
func (mc *MetricsCollector) IsEnabled() bool {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.enabled
}

// RecordOperation executes fn and records its duration, memory delta and
// the row count it reports. A nil collector just runs fn.
func (mc *MetricsCollector) RecordOperation(operation string, fn func() (int, error)) error {
	if mc == nil || !mc.IsEnabled() {
		_, err := fn()
		return err
	}

	var memBefore runtime.MemStats
	runtime.ReadMemStats(&memBefore)

	start := time.Now()
	rows, err := fn()
	duration := time.Since(start)

	var memAfter runtime.MemStats
	runtime.ReadMemStats(&memAfter)

	memoryUsed := int64(memAfter.TotalAlloc - memBefore.TotalAlloc) //nolint:gosec // TotalAlloc only grows

	mc.mu.Lock()
	mc.metrics = append(mc.metrics, OperationMetrics{
		Duration:      duration,
		RowsProcessed: int64(rows),
		MemoryUsed:    memoryUsed,
		Operation:     operation,
		Failed:        err != nil,
	})
	mc.mu.Unlock()

	return err
}

// GetMetrics returns a copy of all collected metrics.
func (mc *MetricsCollector) GetMetrics() []OperationMetrics {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	result := make([]OperationMetrics, len(mc.metrics))
	copy(result, mc.metrics)
	return result
}

// Clear removes all collected metrics.
func (mc *MetricsCollector) Clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.metrics = mc.metrics[:0]
}

// SetEnabled enables or disables metrics collection.
func (mc *MetricsCollector) SetEnabled(enabled bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.enabled = enabled
}

// GetSummary returns a summary of collected metrics.
func (mc *MetricsCollector) GetSummary() MetricsSummary {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	if len(mc.metrics) == 0 {
		return MetricsSummary{}
	}

	var totalDuration time.Duration
	var totalMemory int64
	var totalRows int64
	failures := 0
	operationCounts := make(map[string]int)

	for _, metric := range mc.metrics {
		totalDuration += metric.Duration
		totalMemory += metric.MemoryUsed
		totalRows += metric.RowsProcessed
		operationCounts[metric.Operation]++
		if metric.Failed {
			failures++
		}
	}

	return MetricsSummary{
		TotalOperations: len(mc.metrics),
		TotalDuration:   totalDuration,
		TotalMemory:     totalMemory,
		TotalRows:       totalRows,
		Failures:        failures,
		OperationCounts: operationCounts,
		AverageDuration: totalDuration / time.Duration(len(mc.metrics)),
	}
}

// LogSummary writes one line per recorded operation and a total line.
func (mc *MetricsCollector) LogSummary(logger *slog.Logger) {
	for _, m := range mc.GetMetrics() {
		logger.Info("operation",
			"name", m.Operation,
			"duration", m.Duration,
			"rows", m.RowsProcessed,
			"memory_bytes", m.MemoryUsed,
			"failed", m.Failed,
		)
	}

	summary := mc.GetSummary()
	ops := make([]string, 0, len(summary.OperationCounts))
	for op := range summary.OperationCounts {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	logger.Info("metrics summary",
		"operations", summary.TotalOperations,
		"kinds", ops,
		"total_duration", summary.TotalDuration,
		"total_rows", summary.TotalRows,
		"failures", summary.Failures,
	)
}

// MetricsSummary provides aggregate statistics for collected metrics.
type MetricsSummary struct {
	TotalOperations int            `json:"total_operations"`
	TotalDuration   time.Duration  `json:"total_duration"`
	TotalMemory     int64          `json:"total_memory"`
	TotalRows       int64          `json:"total_rows"`
	Failures        int            `json:"failures"`
	OperationCounts map[string]int `json:"operation_counts"`
	AverageDuration time.Duration  `json:"average_duration"`
}
