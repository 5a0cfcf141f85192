package arenago

import (
	"log/slog"

	"github.com/hupe1980/arenago/resource"
)

type backingKind int

const (
	backingHeap backingKind = iota
	backingMapped
	backingShared
	backingCaller
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	controller       *resource.Controller
	backing          backingKind
	sharedPath       string
	callerBuf        []byte
}

// Option configures arena construction.
type Option func(*options)

// WithLogger configures structured logging for arena operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := arenago.NewJSONLogger(slog.LevelInfo)
//	a, _ := arenago.New(1024, 16, arenago.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &arenago.BasicMetricsCollector{}
//	a, _ := arenago.New(1024, 16, arenago.WithMetricsCollector(metrics))
//	// ... use a ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithController makes the arena reserve its capacity from a shared memory
// budget at construction and release it on Close. Construction fails when
// the budget cannot be satisfied within a short wait.
func WithController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithMappedBacking places the backing buffer in an anonymous memory
// mapping outside the Go heap. Close unmaps it; using views after Close is
// undefined behavior, exactly as with a closed mmap.
func WithMappedBacking() Option {
	return func(o *options) {
		o.backing = backingMapped
	}
}

// WithSharedFileBacking maps the backing buffer from path with a shared,
// read-write mapping, creating and extending the file as needed. Writes
// through views land in the file and are visible to any other process
// mapping it; synchronizing that access is the caller's responsibility.
// The region is zeroed at construction, so the arena does not resume
// whatever a previous run left in the file. Close unmaps the region but
// keeps the file.
func WithSharedFileBacking(path string) Option {
	return func(o *options) {
		o.backing = backingShared
		o.sharedPath = path
	}
}

// WithBacking uses a caller-owned byte region as the backing buffer, for
// example a shared memory mapping created with a different lifetime than
// the arena. buf must be at least capacity bytes long and 8-byte aligned at
// its base. The arena zeroes buf[:capacity] at construction and never frees
// the region; synchronizing access across processes is the caller's
// responsibility.
func WithBacking(buf []byte) Option {
	return func(o *options) {
		o.backing = backingCaller
		o.callerBuf = buf
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
