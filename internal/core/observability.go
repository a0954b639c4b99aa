package core

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"toyinventory/pkg/domain"
)

// MetricsRecorder receives the outcome of every inventory operation.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

// SaleRecorder is implemented by recorders that also count individual sales.
type SaleRecorder interface {
	RecordSale(kind domain.Kind, removed bool)
}

type noopMetrics struct{}

func (noopMetrics) Observe(context.Context, string, bool, time.Duration) {}

// Operation names reported to the MetricsRecorder.
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpSearch   = "search"
	OpFilter   = "filter"
	OpAdd      = "add"
	OpPurchase = "purchase"
	OpRemove   = "remove"
)

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// observe reports an operation outcome. Call it deferred with a pointer to
// the named error result.
func (inv *Inventory) observe(ctx context.Context, op string, started time.Time, errp *error) {
	success := errp == nil || *errp == nil
	inv.metrics.Observe(ctx, op, success, time.Since(started))
}

func (inv *Inventory) recordSale(kind domain.Kind, removed bool) {
	if sr, ok := inv.metrics.(SaleRecorder); ok {
		sr.RecordSale(kind, removed)
	}
}
