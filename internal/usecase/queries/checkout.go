package queries

import (
	"context"

	"equipment-checkout/internal/domain/auditlog"
	"equipment-checkout/internal/domain/checkout"
	"equipment-checkout/internal/domain/resource"
	"equipment-checkout/internal/domain/waitlist"
	"equipment-checkout/internal/pkg/errs"
)

var (
	ErrCheckoutNotFound = errs.New("checkout not found")
	ErrInvalidCursor    = errs.New("invalid cursor")
)

type CheckoutQueries interface {
	GetPool(ctx context.Context) (*PoolView, error)
	ListCheckouts(ctx context.Context) ([]*CheckoutView, error)
	GetCheckout(ctx context.Context, id resource.ID) (*CheckoutView, error)
	ListWaitlist(ctx context.Context) ([]*WaitlistEntryView, error)
	ListAuditLogs(ctx context.Context, cursor string, afterID int64, limit int) (*AuditLogPage, error)
}

type CheckoutReadStore interface {
	List(ctx context.Context) ([]*checkout.Record, error)
	FindByResource(ctx context.Context, id resource.ID) (*checkout.Record, error)
}

type WaitlistReadStore interface {
	List(ctx context.Context) ([]*waitlist.Entry, error)
}

type AuditLogReadStore interface {
	List(ctx context.Context, afterID int64, limit int) ([]*auditlog.Entry, error)
}

type checkoutQueriesImpl struct {
	checkouts CheckoutReadStore
	waitlist  WaitlistReadStore
	auditLogs AuditLogReadStore
	pool      *resource.Pool
}

func NewCheckoutQueries(
	checkouts CheckoutReadStore,
	waitlist WaitlistReadStore,
	auditLogs AuditLogReadStore,
	pool *resource.Pool,
) CheckoutQueries {
	return &checkoutQueriesImpl{
		checkouts: checkouts,
		waitlist:  waitlist,
		auditLogs: auditLogs,
		pool:      pool,
	}
}

func (q *checkoutQueriesImpl) GetPool(ctx context.Context) (*PoolView, error) {
	records, err := q.checkouts.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list checkouts")
	}

	held := make(map[resource.ID]*checkout.Record, len(records))
	for _, rec := range records {
		held[rec.ResourceID()] = rec
	}
	full := len(records) >= q.pool.Capacity()

	view := &PoolView{
		Capacity:  q.pool.Capacity(),
		Active:    len(records),
		Resources: make([]*ResourceView, 0, q.pool.Capacity()),
	}
	for _, id := range q.pool.IDs() {
		rv := &ResourceView{ID: id.Int(), Code: id.Code()}
		if rec, ok := held[id]; ok {
			at := rec.CheckedAt()
			rv.HolderID = rec.UserID()
			rv.HolderName = rec.UserName()
			rv.CheckedOutAt = &at
		} else {
			rv.Available = !full
		}
		view.Resources = append(view.Resources, rv)
	}
	return view, nil
}

func (q *checkoutQueriesImpl) ListCheckouts(ctx context.Context) ([]*CheckoutView, error) {
	records, err := q.checkouts.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list checkouts")
	}

	views := make([]*CheckoutView, len(records))
	for i, rec := range records {
		views[i] = toCheckoutView(rec)
	}
	return views, nil
}

func (q *checkoutQueriesImpl) GetCheckout(ctx context.Context, id resource.ID) (*CheckoutView, error) {
	if err := q.pool.Validate(id); err != nil {
		return nil, err
	}

	rec, err := q.checkouts.FindByResource(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotCheckedOut) {
			return nil, ErrCheckoutNotFound
		}
		return nil, errs.Wrap(err, "failed to find checkout")
	}
	return toCheckoutView(rec), nil
}

func (q *checkoutQueriesImpl) ListWaitlist(ctx context.Context) ([]*WaitlistEntryView, error) {
	entries, err := q.waitlist.List(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list waitlist")
	}

	views := make([]*WaitlistEntryView, len(entries))
	for i, e := range entries {
		ids := e.AcceptableResourceIDs()
		acceptable := make([]int, len(ids))
		for n, id := range ids {
			acceptable[n] = id.Int()
		}
		views[i] = &WaitlistEntryView{
			UserID:                e.UserID(),
			UserName:              e.UserName(),
			AcceptableResourceIDs: acceptable,
			Phone:                 e.Phone().String(),
			RequestedAt:           e.RequestedAt(),
		}
	}
	return views, nil
}

// ListAuditLogs pages through the log in id order. A non-empty cursor wins over afterID.
func (q *checkoutQueriesImpl) ListAuditLogs(ctx context.Context, cursor string, afterID int64, limit int) (*AuditLogPage, error) {
	if cursor != "" {
		decoded, err := DecodeAfterCursor(cursor)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidCursor)
		}
		afterID = decoded
	}
	limit = ValidateLimit(limit)

	// one extra row tells whether another page exists
	entries, err := q.auditLogs.List(ctx, afterID, limit+1)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list audit logs")
	}

	page := &AuditLogPage{HasMore: len(entries) > limit}
	if page.HasMore {
		entries = entries[:limit]
	}

	page.Entries = make([]*AuditLogView, len(entries))
	for i, e := range entries {
		page.Entries[i] = toAuditLogView(e)
	}
	if page.HasMore {
		page.NextCursor = EncodeAfterCursor(entries[len(entries)-1].LogID())
	}
	return page, nil
}

func toCheckoutView(rec *checkout.Record) *CheckoutView {
	return &CheckoutView{
		ResourceID:   rec.ResourceID().Int(),
		UserID:       rec.UserID(),
		UserName:     rec.UserName(),
		CheckedOutAt: rec.CheckedAt(),
	}
}

func toAuditLogView(e *auditlog.Entry) *AuditLogView {
	view := &AuditLogView{
		LogID:      e.LogID(),
		Code:       e.Code(),
		Outcome:    e.Outcome().Kind().String(),
		UserID:     e.UserID(),
		UserName:   e.UserName(),
		Message:    e.Message(),
		Detail:     e.Detail(),
		RecordedAt: e.RecordedAt(),
	}
	if id, ok := e.Outcome().ResourceID(); ok {
		n := id.Int()
		view.ResourceID = &n
	}
	return view
}
