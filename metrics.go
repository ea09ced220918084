package qcircuit

import "sync/atomic"

// MetricsCollector defines an interface for collecting build-graph metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordQubit is called after each qubit allocation.
	// n is the requested index count, err is nil if successful.
	RecordQubit(n int, err error)

	// RecordOp is called after each operator-producing merge.
	// kind is the descriptor variant name, err is nil if successful.
	RecordOp(kind string, err error)

	// RecordMerge is called after each plain (operator-free) merge.
	// count is the number of qubits merged.
	RecordMerge(count int, err error)

	// RecordSplit is called after each split.
	RecordSplit(err error)

	// RecordMeasurement is called after each measurement marker is added.
	// kind is "measure" or "stochastic".
	RecordMeasurement(kind string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordQubit(int, error)   {}
func (NoopMetricsCollector) RecordOp(string, error)   {}
func (NoopMetricsCollector) RecordMerge(int, error)   {}
func (NoopMetricsCollector) RecordSplit(error)        {}
func (NoopMetricsCollector) RecordMeasurement(string) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	QubitCount       atomic.Int64
	QubitErrors      atomic.Int64
	OpCount          atomic.Int64
	OpErrors         atomic.Int64
	MergeCount       atomic.Int64
	MergeErrors      atomic.Int64
	SplitCount       atomic.Int64
	SplitErrors      atomic.Int64
	MeasurementCount atomic.Int64
	StochasticCount  atomic.Int64
}

func (c *BasicMetricsCollector) RecordQubit(n int, err error) {
	c.QubitCount.Add(1)
	if err != nil {
		c.QubitErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordOp(kind string, err error) {
	c.OpCount.Add(1)
	if err != nil {
		c.OpErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordMerge(count int, err error) {
	c.MergeCount.Add(1)
	if err != nil {
		c.MergeErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordSplit(err error) {
	c.SplitCount.Add(1)
	if err != nil {
		c.SplitErrors.Add(1)
	}
}

func (c *BasicMetricsCollector) RecordMeasurement(kind string) {
	if kind == "stochastic" {
		c.StochasticCount.Add(1)
	} else {
		c.MeasurementCount.Add(1)
	}
}
