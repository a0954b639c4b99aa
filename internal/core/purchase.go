package core

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"toyinventory/pkg/domain"
)

// PurchaseResult describes the inventory state after a sale.
type PurchaseResult struct {
	// Toy is a copy of the sold toy with its updated count.
	Toy domain.Toy
	// Remaining is the stock left after the sale.
	Remaining int
	// Removed is set when the sale exhausted the stock and the toy left the
	// inventory.
	Removed bool
}

func (r PurchaseResult) String() string {
	if r.Removed {
		return "last unit sold, item removed"
	}
	return fmt.Sprintf("purchased, %d remaining", r.Remaining)
}

// Purchase sells one unit of the toy with the given serial number. When the
// count drops to zero or below the toy is removed from the inventory.
func (inv *Inventory) Purchase(serial string) (res PurchaseResult, err error) {
	defer inv.observe(context.Background(), OpPurchase, time.Now(), &err)

	inv.mu.Lock()
	defer inv.mu.Unlock()
	i := inv.indexOf(serial)
	if i < 0 {
		return PurchaseResult{}, ErrNotFound{SerialNumber: serial}
	}
	toy := inv.toys[i]
	remaining := toy.AvailableCount() - 1
	if remaining <= 0 {
		if err := toy.SetAvailableCount(0); err != nil {
			return PurchaseResult{}, err
		}
		inv.toys = slices.Delete(inv.toys, i, i+1)
		res = PurchaseResult{Toy: toy, Remaining: 0, Removed: true}
	} else {
		if err := toy.SetAvailableCount(remaining); err != nil {
			return PurchaseResult{}, err
		}
		res = PurchaseResult{Toy: toy.Clone(), Remaining: remaining}
	}
	inv.recordSale(toy.Kind(), res.Removed)
	inv.logger.WithFields(logrus.Fields{
		"serial_number": serial,
		"remaining":     res.Remaining,
		"removed":       res.Removed,
	}).Info("toy purchased")
	return res, nil
}
