// Package desk holds the single live billing session: the latest raw form
// input flows in, at most one current BillRecord and its share message
// come out. Superseded records are discarded; nothing is persisted.
package desk

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/billmitra/server/internal/billing"
	"github.com/billmitra/server/internal/render"
	"github.com/billmitra/server/pkg/events"
)

// ErrNoBill is returned by every export gate when no bill has been
// generated yet (the action-without-data case).
var ErrNoBill = errors.New("no bill data available, generate a bill first")

// Desk owns the current bill. One writer (the form via the gateway),
// read-only presenters; a mutex covers the handoff between HTTP requests.
type Desk struct {
	calc   *billing.Calculator
	bus    *events.Bus
	logger *zap.Logger

	mu      sync.RWMutex
	current *billing.BillRecord
	message string
}

func New(calc *billing.Calculator, bus *events.Bus, logger *zap.Logger) *Desk {
	return &Desk{
		calc:   calc,
		bus:    bus,
		logger: logger,
	}
}

// Preview runs the validator and, if the input is ready, the calculator.
// Invalid input returns (nil, false) with no error: incomplete input is
// expected during live typing. The current bill is not replaced.
func (d *Desk) Preview(in billing.BillingInput) (*billing.BillRecord, bool) {
	if !in.Valid() {
		return nil, false
	}
	return d.calc.Calculate(in), true
}

// Generate computes a bill and installs it as the current one, together
// with its rendered share message. Returns ok=false when the input does
// not validate.
func (d *Desk) Generate(ctx context.Context, in billing.BillingInput) (*billing.BillRecord, string, bool) {
	if !in.Valid() {
		return nil, "", false
	}

	rec := d.calc.Calculate(in)
	msg := render.ShareMessage(rec)

	d.mu.Lock()
	d.current = rec
	d.message = msg
	d.mu.Unlock()

	d.logger.Info("bill generated",
		zap.String("bill_id", rec.BillID),
		zap.String("tenant", rec.TenantName),
		zap.String("total", rec.TotalBill.StringFixed(2)),
	)

	d.bus.Publish(ctx, events.NewEvent(events.EventBillGenerated, rec.BillID, map[string]interface{}{
		"tenant": rec.TenantName,
		"period": rec.StartDate + " to " + rec.EndDate,
		"total":  rec.TotalBill.StringFixed(2),
	}))

	return rec, msg, true
}

// Current returns the current bill, or ErrNoBill.
func (d *Desk) Current() (*billing.BillRecord, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.current == nil {
		return nil, ErrNoBill
	}
	return d.current, nil
}

// Message returns the share message for the current bill, or ErrNoBill.
func (d *Desk) Message() (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.current == nil || d.message == "" {
		return "", ErrNoBill
	}
	return d.message, nil
}
