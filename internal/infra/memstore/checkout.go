package memstore

import (
	"context"
	"sort"
	"sync"

	"equipment-checkout/internal/domain/checkout"
	"equipment-checkout/internal/domain/resource"
	"equipment-checkout/internal/infra"
	"equipment-checkout/internal/pkg/errs"
)

// CheckoutLedger keeps active checkouts in memory. Both keys are checked and
// written under one lock, which makes Reserve and Release conditional writes.
type CheckoutLedger struct {
	mu         sync.RWMutex
	byResource map[resource.ID]*checkout.Record
	byUser     map[string]resource.ID
}

func NewCheckoutLedger() *CheckoutLedger {
	return &CheckoutLedger{
		byResource: make(map[resource.ID]*checkout.Record),
		byUser:     make(map[string]resource.ID),
	}
}

func (l *CheckoutLedger) HasActiveCheckout(_ context.Context, userID string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.byUser[userID]
	return ok, nil
}

func (l *CheckoutLedger) IsCheckedOut(_ context.Context, id resource.ID) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	_, ok := l.byResource[id]
	return ok, nil
}

func (l *CheckoutLedger) ActiveCount(_ context.Context) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.byResource), nil
}

func (l *CheckoutLedger) Reserve(_ context.Context, rec *checkout.Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byUser[rec.UserID()]; ok {
		return errs.Mark(infra.NewRepoErr(infra.KindDuplicateKey, "user already holds a checkout"), errs.ErrAlreadyCheckedOut)
	}
	if _, ok := l.byResource[rec.ResourceID()]; ok {
		return errs.Mark(infra.NewRepoErr(infra.KindDuplicateKey, "resource already checked out"), errs.ErrResourceUnavailable)
	}

	l.byResource[rec.ResourceID()] = rec
	l.byUser[rec.UserID()] = rec.ResourceID()
	return nil
}

func (l *CheckoutLedger) Release(_ context.Context, id resource.ID) (*checkout.Record, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.byResource[id]
	if !ok {
		return nil, errs.Mark(infra.NewRepoErr(infra.KindNotFound, "no active checkout for resource"), errs.ErrNotCheckedOut)
	}

	delete(l.byResource, id)
	delete(l.byUser, rec.UserID())
	return rec, nil
}

func (l *CheckoutLedger) FindByResource(_ context.Context, id resource.ID) (*checkout.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rec, ok := l.byResource[id]
	if !ok {
		return nil, errs.Mark(infra.NewRepoErr(infra.KindNotFound, "no active checkout for resource"), errs.ErrNotCheckedOut)
	}
	return rec, nil
}

func (l *CheckoutLedger) List(_ context.Context) ([]*checkout.Record, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*checkout.Record, 0, len(l.byResource))
	for _, rec := range l.byResource {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ResourceID() < out[j].ResourceID() })
	return out, nil
}
