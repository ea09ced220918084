package qcircuit

type options struct {
	logger  *Logger
	metrics MetricsCollector
}

// Option configures OpBuilder construction behavior.
type Option func(*options)

// WithLogger configures the logger used for build-graph debug logging.
//
// If nil is passed, the no-op logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics configures the metrics collector notified of build-graph
// operations.
//
// If nil is passed, the no-op collector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}
