package memstore

import (
	"context"
	"sort"
	"sync"

	"equipment-checkout/internal/domain/auditlog"
)

// AuditLog allocates ids from a counter advanced under the same lock that
// appends, so id order and append order agree.
type AuditLog struct {
	mu      sync.RWMutex
	lastID  int64
	entries []*auditlog.Entry
}

func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

func (l *AuditLog) Append(_ context.Context, entry *auditlog.Entry) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.lastID++
	l.entries = append(l.entries, entry.WithLogID(l.lastID))
	return l.lastID, nil
}

// List returns up to limit entries with an id greater than afterID, ascending.
func (l *AuditLog) List(_ context.Context, afterID int64, limit int) ([]*auditlog.Entry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	start := sort.Search(len(l.entries), func(i int) bool { return l.entries[i].LogID() > afterID })
	end := len(l.entries)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	out := make([]*auditlog.Entry, end-start)
	copy(out, l.entries[start:end])
	return out, nil
}
