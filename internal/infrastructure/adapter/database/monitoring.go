package database

import (
	"context"
	"sync/atomic"
	"time"

	coreport "github.com/amirhossein-jamali/coin-ledger/internal/domain/port/core"
)

// slowOperationThreshold marks unit-of-work operations worth a warning
const slowOperationThreshold = 100 * time.Millisecond

// QueryMetrics describes one measured operation
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	RowsAffected int64
	Failed       bool
	ErrorMessage string
}

// QueryStats are running totals since the manager started
type QueryStats struct {
	Operations      int64 `json:"operations"`
	Failed          int64 `json:"failed"`
	Slow            int64 `json:"slow"`
	WriteConflicts  int64 `json:"writeConflicts"`
	TotalDurationMs int64 `json:"totalDurationMs"`
}

// MetricsCollector times commits and rollbacks of the unit of work. It is safe for
// concurrent use.
type MetricsCollector struct {
	logger       coreport.Logger
	timeProvider coreport.TimeProvider

	operations     atomic.Int64
	failed         atomic.Int64
	slow           atomic.Int64
	writeConflicts atomic.Int64
	totalDuration  atomic.Int64
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider) *MetricsCollector {
	return &MetricsCollector{
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MeasureQuery runs fn and records how long it took
func (c *MetricsCollector) MeasureQuery(ctx context.Context, operation string, fn func() (int64, error)) (*QueryMetrics, error) {
	start := c.timeProvider.Now()
	rowsAffected, err := fn()

	metrics := &QueryMetrics{
		Operation:    operation,
		Duration:     c.timeProvider.Since(start).Std(),
		RowsAffected: rowsAffected,
		Failed:       err != nil,
	}
	c.operations.Add(1)
	c.totalDuration.Add(metrics.Duration.Milliseconds())
	if err != nil {
		metrics.ErrorMessage = err.Error()
		c.failed.Add(1)
	}

	if metrics.Duration > slowOperationThreshold {
		c.slow.Add(1)
		c.logger.Warn("Slow database operation detected", map[string]any{
			"operation":     operation,
			"duration_ms":   metrics.Duration.Milliseconds(),
			"rows_affected": rowsAffected,
			"failed":        metrics.Failed,
			"error_message": metrics.ErrorMessage,
		})
	}

	return metrics, err
}

// RecordWriteConflict counts a transaction the database aborted to keep serializability
func (c *MetricsCollector) RecordWriteConflict() {
	c.writeConflicts.Add(1)
}

// Stats returns a snapshot of the running totals
func (c *MetricsCollector) Stats() QueryStats {
	return QueryStats{
		Operations:      c.operations.Load(),
		Failed:          c.failed.Load(),
		Slow:            c.slow.Load(),
		WriteConflicts:  c.writeConflicts.Load(),
		TotalDurationMs: c.totalDuration.Load(),
	}
}
