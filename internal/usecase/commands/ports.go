package commands

import (
	"context"
	"time"

	"equipment-checkout/internal/domain/auditlog"
	"equipment-checkout/internal/domain/checkout"
	"equipment-checkout/internal/domain/resource"
	"equipment-checkout/internal/domain/waitlist"
)

// CheckoutLedger owns the active checkout records, keyed by resource id.
// Reserve must be a single conditional write: it fails with errs.ErrResourceUnavailable
// when a record for the resource exists and errs.ErrAlreadyCheckedOut when the user
// already holds one. Release is a conditional delete failing with errs.ErrNotCheckedOut.
type CheckoutLedger interface {
	resource.Occupancy
	HasActiveCheckout(ctx context.Context, userID string) (bool, error)
	Reserve(ctx context.Context, rec *checkout.Record) error
	Release(ctx context.Context, id resource.ID) (*checkout.Record, error)
}

// WaitlistRegistry owns pending waitlist entries, keyed by user id.
// Add fails with errs.ErrAlreadyOnWaitlist, Remove with errs.ErrNotOnWaitlist.
type WaitlistRegistry interface {
	HasEntry(ctx context.Context, userID string) (bool, error)
	Add(ctx context.Context, entry *waitlist.Entry) error
	Remove(ctx context.Context, userID string) error
}

// AuditLog appends entries under a store-allocated id that is unique and strictly
// increasing across concurrent callers.
type AuditLog interface {
	Append(ctx context.Context, entry *auditlog.Entry) (int64, error)
}

type CheckoutParams struct {
	ResourceID  resource.ID
	UserID      string
	UserName    string
	RequestedAt time.Time
}

type ReturnParams struct {
	ResourceID resource.ID
}

type JoinWaitlistParams struct {
	UserID                string
	UserName              string
	AcceptableResourceIDs []resource.ID
	Phone                 string
	RequestedAt           time.Time
}

type LeaveWaitlistParams struct {
	UserID string
}

// Result is what every command returns. LogID is zero when the audit append failed.
// InvalidInput marks outcomes caused by the request itself, such as a resource id
// outside the pool or a missing user name.
type Result struct {
	Outcome      auditlog.Outcome
	Message      string
	LogID        int64
	InvalidInput bool
}
