package core

import "github.com/sirupsen/logrus"

// Option configures an Inventory.
type Option func(*Inventory)

// WithLogger routes inventory events to logger. A nil logger is ignored.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(inv *Inventory) {
		if logger != nil {
			inv.logger = logger
		}
	}
}

// WithMetrics reports every operation to rec. A nil recorder is ignored.
func WithMetrics(rec MetricsRecorder) Option {
	return func(inv *Inventory) {
		if rec != nil {
			inv.metrics = rec
		}
	}
}
