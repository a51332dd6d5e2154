package memstore

import (
	"context"
	"sort"
	"sync"

	"equipment-checkout/internal/domain/waitlist"
	"equipment-checkout/internal/infra"
	"equipment-checkout/internal/pkg/errs"
)

type WaitlistRegistry struct {
	mu      sync.RWMutex
	entries map[string]*waitlist.Entry
}

func NewWaitlistRegistry() *WaitlistRegistry {
	return &WaitlistRegistry{
		entries: make(map[string]*waitlist.Entry),
	}
}

func (r *WaitlistRegistry) HasEntry(_ context.Context, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[userID]
	return ok, nil
}

func (r *WaitlistRegistry) Add(_ context.Context, entry *waitlist.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[entry.UserID()]; ok {
		return errs.Mark(infra.NewRepoErr(infra.KindDuplicateKey, "user already on waitlist"), errs.ErrAlreadyOnWaitlist)
	}
	r.entries[entry.UserID()] = entry
	return nil
}

func (r *WaitlistRegistry) Remove(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[userID]; !ok {
		return errs.Mark(infra.NewRepoErr(infra.KindNotFound, "user not on waitlist"), errs.ErrNotOnWaitlist)
	}
	delete(r.entries, userID)
	return nil
}

// List returns entries oldest first.
func (r *WaitlistRegistry) List(_ context.Context) ([]*waitlist.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*waitlist.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RequestedAt().Equal(out[j].RequestedAt()) {
			return out[i].UserID() < out[j].UserID()
		}
		return out[i].RequestedAt().Before(out[j].RequestedAt())
	})
	return out, nil
}
