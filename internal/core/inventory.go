// Package core owns the in-memory toy inventory and the operations callers
// run against it.
package core

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"toyinventory/internal/codec"
	"toyinventory/pkg/domain"
)

// Inventory is the ordered collection of toys. Serial numbers are unique
// within it at all times. A single mutex serializes every operation, so a
// purchase can never sell the same last unit twice.
type Inventory struct {
	mu      sync.Mutex
	toys    []domain.Toy
	logger  logrus.FieldLogger
	metrics MetricsRecorder
}

// NewInventory returns an empty inventory.
func NewInventory(opts ...Option) *Inventory {
	inv := &Inventory{
		logger:  discardLogger(),
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Load reads every record from src and decodes each independently. Records
// that fail to decode, and records repeating a serial number already loaded,
// are skipped and returned as diagnostics. Only a failure to read src is an
// error.
func Load(ctx context.Context, src domain.RecordStore, opts ...Option) (inv *Inventory, diags []codec.Diagnostic, err error) {
	inv = NewInventory(opts...)
	defer inv.observe(ctx, OpLoad, time.Now(), &err)

	records, err := src.ReadRecords(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load inventory: %w", err)
	}
	decoded, diags := codec.DecodeRecords(records)
	for _, d := range decoded {
		sn := d.Toy.SerialNumber()
		if inv.indexOf(sn) >= 0 {
			diags = append(diags, codec.Diagnostic{Line: d.Line, Record: records[d.Line-1], Err: ErrDuplicateSerial{SerialNumber: sn}})
			continue
		}
		inv.toys = append(inv.toys, d.Toy)
	}
	slices.SortFunc(diags, func(a, b codec.Diagnostic) int { return a.Line - b.Line })
	for _, d := range diags {
		inv.logger.WithFields(logrus.Fields{
			"line":  d.Line,
			"error": d.Err.Error(),
		}).Warn("skipping inventory record")
	}
	inv.logger.WithFields(logrus.Fields{
		"toys":    len(inv.toys),
		"skipped": len(diags),
	}).Info("inventory loaded")
	return inv, diags, nil
}

// Save encodes every toy in inventory order and replaces the contents of dst.
func (inv *Inventory) Save(ctx context.Context, dst domain.RecordStore) (err error) {
	defer inv.observe(ctx, OpSave, time.Now(), &err)

	inv.mu.Lock()
	records := codec.EncodeRecords(inv.toys)
	inv.mu.Unlock()

	if err := dst.WriteRecords(ctx, records); err != nil {
		inv.logger.WithError(err).Error("save inventory")
		return fmt.Errorf("save inventory: %w", err)
	}
	inv.logger.WithField("toys", len(records)).Info("inventory saved")
	return nil
}

// Add inserts a copy of toy at the end of the inventory. It fails with
// ErrDuplicateSerial, leaving the inventory untouched, when the serial number
// is taken.
func (inv *Inventory) Add(toy domain.Toy) (err error) {
	defer inv.observe(context.Background(), OpAdd, time.Now(), &err)
	if toy == nil {
		return fmt.Errorf("add toy: nil toy")
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()
	sn := toy.SerialNumber()
	if inv.indexOf(sn) >= 0 {
		return ErrDuplicateSerial{SerialNumber: sn}
	}
	inv.toys = append(inv.toys, toy.Clone())
	inv.logger.WithFields(logrus.Fields{
		"serial_number": sn,
		"category":      toy.Kind(),
	}).Info("toy added")
	return nil
}

// AddFields validates raw add-path input with domain.Build and adds the
// resulting toy.
func (inv *Inventory) AddFields(f domain.Fields) (domain.Toy, error) {
	toy, err := domain.Build(f)
	if err != nil {
		inv.metrics.Observe(context.Background(), OpAdd, false, 0)
		return nil, err
	}
	if err := inv.Add(toy); err != nil {
		return nil, err
	}
	return toy.Clone(), nil
}

// Remove deletes the toy with the given serial number regardless of its
// stock and returns it.
func (inv *Inventory) Remove(serial string) (removed domain.Toy, err error) {
	defer inv.observe(context.Background(), OpRemove, time.Now(), &err)

	inv.mu.Lock()
	defer inv.mu.Unlock()
	i := inv.indexOf(serial)
	if i < 0 {
		return nil, ErrNotFound{SerialNumber: serial}
	}
	removed = inv.toys[i]
	inv.toys = slices.Delete(inv.toys, i, i+1)
	inv.logger.WithField("serial_number", serial).Info("toy removed")
	return removed, nil
}

// Get returns a copy of the toy with the given serial number.
func (inv *Inventory) Get(serial string) (domain.Toy, bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	i := inv.indexOf(serial)
	if i < 0 {
		return nil, false
	}
	return inv.toys[i].Clone(), true
}

// List returns copies of every toy in inventory order.
func (inv *Inventory) List() []domain.Toy {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return cloneAll(inv.toys)
}

// Len returns the number of distinct toys held.
func (inv *Inventory) Len() int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return len(inv.toys)
}

func (inv *Inventory) indexOf(serial string) int {
	return slices.IndexFunc(inv.toys, func(t domain.Toy) bool {
		return t.SerialNumber() == serial
	})
}

func cloneAll(toys []domain.Toy) []domain.Toy {
	out := make([]domain.Toy, len(toys))
	for i, t := range toys {
		out[i] = t.Clone()
	}
	return out
}
