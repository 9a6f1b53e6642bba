package entry

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Transport receives the normalized payload of a submitted entry.
// Implementations post it upstream or persist it locally; either way
// the controller only cares about success or failure.
type Transport interface {
	Submit(ctx context.Context, p Payload) error
}

// Policy captures per-session behavior knobs.
type Policy struct {
	// AutoDeriveExpiry makes every trade-date edit overwrite the expiry
	// with the resolved last-Thursday date, discarding manual edits.
	// This mirrors the original form and is the default.
	AutoDeriveExpiry bool
}

// DefaultPolicy returns the policy matching the original form behavior.
func DefaultPolicy() Policy {
	return Policy{AutoDeriveExpiry: true}
}

// Controller owns one trade entry for the duration of a form session.
// It reacts to raw field edits, keeps the derived fields consistent,
// and gates submission behind validation and normalization. Edits are
// synchronous; Submit is the only suspension point and only one may be
// in flight per session.
type Controller struct {
	logger    *zap.Logger
	transport Transport
	policy    Policy

	mu         sync.Mutex
	entry      TradeEntry
	submitting bool
}

// NewController starts a session with defaults: trade date set to now
// and, when the policy says so, the expiry already derived from it.
// The original form derives both dependent fields on mount.
func NewController(logger *zap.Logger, transport Transport, policy Policy, now time.Time) *Controller {
	e := New(now)
	if policy.AutoDeriveExpiry {
		expiry := ResolveExpiry(e.TradeDate)
		e.Expiry = &expiry
	}
	e.BuyQty = ComputeBuyQuantity(e.LotSize, e.NumberLot)

	return &Controller{
		logger:    logger,
		transport: transport,
		policy:    policy,
		entry:     e,
	}
}

// Entry returns the current revision of the trade entry.
func (c *Controller) Entry() TradeEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entry
}

// EditField applies a raw string edit. Edits to the lot factors
// recompute the buy quantity immediately, so no stale derived value is
// ever observable after this returns.
func (c *Controller) EditField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.entry.withField(name, value)
	if err != nil {
		return err
	}

	if name == FieldLotSize || name == FieldNumberLot {
		next.BuyQty = ComputeBuyQuantity(next.LotSize, next.NumberLot)
	}

	c.entry = next
	c.logger.Debug("Field edited", zap.String("field", name))
	return nil
}

// EditDate applies a calendar-picker edit. A trade-date edit re-derives
// the expiry under the auto-derive policy, overwriting any manual
// expiry edit made since the last date change. Clearing the trade date
// leaves the expiry as it was.
func (c *Controller) EditDate(name string, d *time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, err := c.entry.withDate(name, d)
	if err != nil {
		return err
	}

	if name == FieldDate && d != nil && c.policy.AutoDeriveExpiry {
		expiry := ResolveExpiry(next.TradeDate)
		next.Expiry = &expiry
		c.logger.Debug("Expiry re-derived from trade date",
			zap.Time("trade_date", next.TradeDate),
			zap.Time("expiry", expiry))
	}

	c.entry = next
	return nil
}

// Submit runs the validation gate and, on success, hands the
// normalized payload to the transport. Exactly one outcome is reported
// per attempt: a *MissingFieldError, a *TransportError, or nil. The
// entry is never mutated here, so any failure leaves the session ready
// for retry. A second submit while one is pending is rejected with
// ErrSubmitInFlight.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	c.submitting = true
	snapshot := c.entry
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	if err := Validate(snapshot); err != nil {
		c.logger.Info("Submission rejected by validation", zap.Error(err))
		return err
	}

	payload := Normalize(snapshot)
	if err := c.transport.Submit(ctx, payload); err != nil {
		c.logger.Error("Submission transport failed", zap.Error(err))
		return &TransportError{Err: err}
	}

	c.logger.Info("Submission succeeded",
		zap.String("username", payload.Username),
		zap.String("item", payload.Item),
		zap.Float64("buyqty", payload.BuyQty))
	return nil
}
