package arenago

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    addCounter prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordAddPartition(bytes uint64, duration time.Duration, err error) {
//	    p.addCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordAddPartition is called after each AddPartition call.
	// bytes is the aligned size reserved (0 on failure), duration is the
	// total time taken, err is nil if successful.
	RecordAddPartition(bytes uint64, duration time.Duration, err error)

	// RecordReset is called after each Reset with the number of
	// partitions released.
	RecordReset(partitions int, duration time.Duration)

	// RecordLookup is called after each by-name or by-spec lookup.
	RecordLookup(hit bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAddPartition(uint64, time.Duration, error) {}
func (NoopMetricsCollector) RecordReset(int, time.Duration)                  {}
func (NoopMetricsCollector) RecordLookup(bool)                               {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount      atomic.Int64
	AddErrors     atomic.Int64
	AddBytes      atomic.Int64
	AddTotalNanos atomic.Int64
	ResetCount    atomic.Int64
	LookupCount   atomic.Int64
	LookupMisses  atomic.Int64
}

// RecordAddPartition implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAddPartition(bytes uint64, duration time.Duration, err error) {
	b.AddCount.Add(1)
	b.AddBytes.Add(int64(bytes)) //nolint:gosec // partition sizes are far below MaxInt64
	b.AddTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AddErrors.Add(1)
	}
}

// RecordReset implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReset(partitions int, duration time.Duration) {
	b.ResetCount.Add(1)
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(hit bool) {
	b.LookupCount.Add(1)
	if !hit {
		b.LookupMisses.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:     b.AddCount.Load(),
		AddErrors:    b.AddErrors.Load(),
		AddBytes:     b.AddBytes.Load(),
		AddAvgNanos:  b.getAvgAddNanos(),
		ResetCount:   b.ResetCount.Load(),
		LookupCount:  b.LookupCount.Load(),
		LookupMisses: b.LookupMisses.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAddNanos() int64 {
	count := b.AddCount.Load()
	if count == 0 {
		return 0
	}
	return b.AddTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount     int64
	AddErrors    int64
	AddBytes     int64
	AddAvgNanos  int64
	ResetCount   int64
	LookupCount  int64
	LookupMisses int64
}
