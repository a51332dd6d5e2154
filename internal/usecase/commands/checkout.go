package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"equipment-checkout/internal/domain/auditlog"
	"equipment-checkout/internal/domain/checkout"
	"equipment-checkout/internal/domain/resource"
	"equipment-checkout/internal/domain/waitlist"
	"equipment-checkout/internal/pkg/clock"
	"equipment-checkout/internal/pkg/errs"
)

var errMissingUserID = errs.Mark(errs.New("user id is required"), errs.ErrDomainValidation)

// CheckoutCommands is the reservation engine. Every call is total: it yields an
// outcome and appends exactly one audit entry, whatever happened.
type CheckoutCommands interface {
	Checkout(ctx context.Context, params CheckoutParams) Result
	Return(ctx context.Context, params ReturnParams) Result
	JoinWaitlist(ctx context.Context, params JoinWaitlistParams) Result
	LeaveWaitlist(ctx context.Context, params LeaveWaitlistParams) Result
}

type checkoutCommandsImpl struct {
	ledger   CheckoutLedger
	registry WaitlistRegistry
	audit    AuditLog
	pool     *resource.Pool
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCheckoutCommands(
	ledger CheckoutLedger,
	registry WaitlistRegistry,
	audit AuditLog,
	pool *resource.Pool,
	clock clock.Clock,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		ledger:   ledger,
		registry: registry,
		audit:    audit,
		pool:     pool,
		clock:    clock,
		logger:   logger,
	}
}

// outcome plus what the audit entry should carry
type decision struct {
	outcome  auditlog.Outcome
	userID   string
	userName string
	cause    error
}

func (c *checkoutCommandsImpl) Checkout(ctx context.Context, p CheckoutParams) Result {
	return c.finish(ctx, "checkout", c.checkout(ctx, p))
}

func (c *checkoutCommandsImpl) checkout(ctx context.Context, p CheckoutParams) decision {
	userID := strings.TrimSpace(p.UserID)
	d := decision{userID: userID, userName: p.UserName}

	if userID == "" {
		d.outcome, d.cause = auditlog.CheckoutFailed(p.ResourceID), errMissingUserID
		return d
	}

	held, err := c.ledger.HasActiveCheckout(ctx, userID)
	if err != nil {
		d.outcome, d.cause = auditlog.UnknownError(), err
		return d
	}
	if held {
		d.outcome = auditlog.AlreadyCheckedOut()
		return d
	}

	if err := c.pool.Validate(p.ResourceID); err != nil {
		d.outcome, d.cause = auditlog.CheckoutFailed(p.ResourceID), err
		return d
	}

	rec, err := checkout.NewRecord(p.ResourceID, userID, p.UserName, c.requestTime(p.RequestedAt))
	if err != nil {
		d.outcome, d.cause = auditlog.CheckoutFailed(p.ResourceID), errs.Mark(err, errs.ErrDomainValidation)
		return d
	}

	available, err := c.pool.IsAvailable(ctx, p.ResourceID)
	if err != nil {
		d.outcome, d.cause = auditlog.UnknownError(), err
		return d
	}
	if !available {
		d.outcome = auditlog.CheckoutFailed(p.ResourceID)
		return d
	}

	// The availability read above is advisory; the conditional write decides.
	if err := c.ledger.Reserve(ctx, rec); err != nil {
		switch {
		case errs.Is(err, errs.ErrResourceUnavailable), errs.Is(err, errs.ErrCapacityExceeded):
			d.outcome = auditlog.CheckoutFailed(p.ResourceID)
		case errs.Is(err, errs.ErrAlreadyCheckedOut):
			d.outcome = auditlog.AlreadyCheckedOut()
		default:
			d.outcome, d.cause = auditlog.UnknownError(), err
		}
		return d
	}

	c.consumeWaitlistEntry(ctx, rec.UserID())

	d.outcome = auditlog.CheckoutSucceeded(p.ResourceID)
	return d
}

// consumeWaitlistEntry drops the entry of a user who just checked out, so nobody
// holds a checkout and a waitlist entry at once.
func (c *checkoutCommandsImpl) consumeWaitlistEntry(ctx context.Context, userID string) {
	err := c.registry.Remove(ctx, userID)
	if err == nil {
		c.logger.Info("waitlist entry consumed by checkout", "user_id", userID)
		return
	}
	if !errs.Is(err, errs.ErrNotOnWaitlist) {
		c.logger.Warn("failed to remove waitlist entry after checkout", "user_id", userID, "error", err.Error())
	}
}

func (c *checkoutCommandsImpl) Return(ctx context.Context, p ReturnParams) Result {
	return c.finish(ctx, "return", c.returnResource(ctx, p))
}

func (c *checkoutCommandsImpl) returnResource(ctx context.Context, p ReturnParams) decision {
	var d decision

	if err := c.pool.Validate(p.ResourceID); err != nil {
		d.outcome, d.cause = auditlog.ReturnFailedNotCheckedOut(p.ResourceID), err
		return d
	}

	rec, err := c.ledger.Release(ctx, p.ResourceID)
	if err != nil {
		if errs.Is(err, errs.ErrNotCheckedOut) {
			d.outcome = auditlog.ReturnFailedNotCheckedOut(p.ResourceID)
			return d
		}
		d.outcome, d.cause = auditlog.UnknownError(), err
		return d
	}

	d.userID, d.userName = rec.UserID(), rec.UserName()
	d.outcome = auditlog.ReturnSucceeded(p.ResourceID)
	return d
}

func (c *checkoutCommandsImpl) JoinWaitlist(ctx context.Context, p JoinWaitlistParams) Result {
	return c.finish(ctx, "join_waitlist", c.joinWaitlist(ctx, p))
}

func (c *checkoutCommandsImpl) joinWaitlist(ctx context.Context, p JoinWaitlistParams) decision {
	userID := strings.TrimSpace(p.UserID)
	d := decision{userID: userID, userName: p.UserName}

	if userID == "" {
		d.outcome, d.cause = auditlog.WaitlistJoinFailed(), errMissingUserID
		return d
	}

	held, err := c.ledger.HasActiveCheckout(ctx, userID)
	if err != nil {
		d.outcome, d.cause = auditlog.UnknownError(), err
		return d
	}
	if held {
		d.outcome = auditlog.AlreadyCheckedOut()
		return d
	}

	queued, err := c.registry.HasEntry(ctx, userID)
	if err != nil {
		d.outcome, d.cause = auditlog.UnknownError(), err
		return d
	}
	if queued {
		d.outcome = auditlog.AlreadyOnWaitlist()
		return d
	}

	acceptable := waitlist.DedupeIDs(p.AcceptableResourceIDs)
	for _, id := range acceptable {
		available, err := c.pool.IsAvailable(ctx, id)
		if err != nil {
			d.outcome, d.cause = auditlog.UnknownError(), err
			return d
		}
		if available {
			d.outcome = auditlog.ResourceAvailable(id)
			return d
		}
	}

	phone, err := waitlist.NewPhone(p.Phone)
	if err != nil {
		d.outcome, d.cause = auditlog.InvalidPhone(), err
		return d
	}

	for _, id := range acceptable {
		if err := c.pool.Validate(id); err != nil {
			d.outcome, d.cause = auditlog.WaitlistJoinFailed(), errs.Mark(err, errs.ErrDomainValidation)
			return d
		}
	}

	entry, err := waitlist.NewEntry(userID, p.UserName, acceptable, phone, c.requestTime(p.RequestedAt))
	if err != nil {
		d.outcome, d.cause = auditlog.WaitlistJoinFailed(), errs.Mark(err, errs.ErrDomainValidation)
		return d
	}

	if err := c.registry.Add(ctx, entry); err != nil {
		if errs.Is(err, errs.ErrAlreadyOnWaitlist) {
			d.outcome = auditlog.AlreadyOnWaitlist()
			return d
		}
		d.outcome, d.cause = auditlog.WaitlistJoinFailed(), err
		return d
	}

	// A checkout by the same user may have landed between the first check and Add.
	// Checkout removes the entry after its write, so one of the two sides sees the other.
	held, err = c.ledger.HasActiveCheckout(ctx, entry.UserID())
	if err != nil {
		c.logger.Warn("could not re-verify checkout after waitlist join", "user_id", entry.UserID(), "error", err.Error())
	} else if held {
		if rmErr := c.registry.Remove(ctx, entry.UserID()); rmErr != nil && !errs.Is(rmErr, errs.ErrNotOnWaitlist) {
			d.outcome, d.cause = auditlog.UnknownError(), rmErr
			return d
		}
		d.outcome = auditlog.AlreadyCheckedOut()
		return d
	}

	d.outcome = auditlog.WaitlistJoined()
	return d
}

func (c *checkoutCommandsImpl) LeaveWaitlist(ctx context.Context, p LeaveWaitlistParams) Result {
	return c.finish(ctx, "leave_waitlist", c.leaveWaitlist(ctx, p))
}

func (c *checkoutCommandsImpl) leaveWaitlist(ctx context.Context, p LeaveWaitlistParams) decision {
	userID := strings.TrimSpace(p.UserID)
	d := decision{userID: userID}

	if userID == "" {
		d.outcome, d.cause = auditlog.NotOnWaitlist(), errMissingUserID
		return d
	}

	if err := c.registry.Remove(ctx, userID); err != nil {
		if errs.Is(err, errs.ErrNotOnWaitlist) {
			d.outcome = auditlog.NotOnWaitlist()
			return d
		}
		d.outcome, d.cause = auditlog.UnknownError(), err
		return d
	}

	d.outcome = auditlog.WaitlistLeft()
	return d
}

// finish appends the single audit entry for a request once its state change is settled.
func (c *checkoutCommandsImpl) finish(ctx context.Context, op string, d decision) Result {
	var detail string
	if d.cause != nil {
		detail = d.cause.Error()
	}

	entry := auditlog.NewEntry(d.outcome, d.userID, d.userName, detail, c.clock.Now())
	result := Result{
		Outcome:      d.outcome,
		Message:      entry.Message(),
		InvalidInput: isInvalidInput(d.cause),
	}

	c.logOutcome(op, d)

	logID, err := c.audit.Append(ctx, entry)
	if err != nil {
		c.logger.Error("failed to append audit log entry",
			"operation", op,
			"outcome", d.outcome.String(),
			"error", errs.Mark(err, errs.ErrAuditAppendFailed).Error())
		return result
	}

	result.LogID = logID
	return result
}

// isInvalidInput tells request faults apart from state conflicts and store faults.
func isInvalidInput(cause error) bool {
	if cause == nil {
		return false
	}
	return errs.Is(cause, errs.ErrDomainValidation) || errs.Is(cause, errs.ErrResourceOutOfRange)
}

func (c *checkoutCommandsImpl) logOutcome(op string, d decision) {
	attrs := []any{
		"operation", op,
		"outcome", d.outcome.String(),
		"code", d.outcome.Code(),
	}
	if d.userID != "" {
		attrs = append(attrs, "user_id", d.userID)
	}

	switch {
	case d.outcome.Kind() == auditlog.KindUnknownError:
		if d.cause != nil {
			attrs = append(attrs, "error", d.cause.Error(), "stack", errs.ExtractStackLines(d.cause, 10))
		}
		c.logger.Error("request failed with persistence error", attrs...)
	case d.outcome.IsSuccess():
		c.logger.Info("request succeeded", attrs...)
	default:
		if d.cause != nil {
			attrs = append(attrs, "reason", d.cause.Error())
		}
		c.logger.Warn("request rejected", attrs...)
	}
}

func (c *checkoutCommandsImpl) requestTime(t time.Time) time.Time {
	if t.IsZero() {
		return c.clock.Now()
	}
	return t
}
