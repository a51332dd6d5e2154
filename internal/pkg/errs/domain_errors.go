package errs

import "errors"

// Sentinel errors shared by the stores and the reservation engine.
var (
	// Resource errors
	ErrResourceOutOfRange = errors.New("resource id out of range")

	// Checkout ledger errors
	ErrAlreadyCheckedOut   = errors.New("user already has an active checkout")
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrNotCheckedOut       = errors.New("resource not checked out")
	ErrCapacityExceeded    = errors.New("pool capacity exceeded")

	// Waitlist errors
	ErrAlreadyOnWaitlist = errors.New("user already on waitlist")
	ErrNotOnWaitlist     = errors.New("user not on waitlist")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrNoAcceptableUnits = errors.New("acceptable resource set is empty")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrAuditAppendFailed = errors.New("audit log append failed")
)
