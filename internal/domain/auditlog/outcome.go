package auditlog

import (
	"fmt"

	"equipment-checkout/internal/domain/resource"
)

// Kind is the symbolic outcome family. Kinds are a stable contract for callers.
type Kind string

const (
	KindUnknownError              Kind = "UNKNOWN_ERROR"
	KindAlreadyCheckedOut         Kind = "ALREADY_CHECKED_OUT"
	KindAlreadyOnWaitlist         Kind = "ALREADY_ON_WAITLIST"
	KindInvalidPhone              Kind = "INVALID_PHONE"
	KindCheckoutSucceeded         Kind = "CHECKOUT_SUCCEEDED"
	KindCheckoutFailed            Kind = "CHECKOUT_FAILED"
	KindReturnSucceeded           Kind = "RETURN_SUCCEEDED"
	KindReturnFailedNotCheckedOut Kind = "RETURN_FAILED_NOT_CHECKED_OUT"
	KindResourceAvailable         Kind = "RESOURCE_AVAILABLE"
	KindWaitlistJoinSucceeded     Kind = "WAITLIST_JOIN_SUCCEEDED"
	KindWaitlistJoinFailed        Kind = "WAITLIST_JOIN_FAILED"
	KindWaitlistLeft              Kind = "WAITLIST_LEFT"
	KindNotOnWaitlist             Kind = "NOT_ON_WAITLIST"
)

// numeric prefixes for kinds that embed a resource id
var resourceCodePrefix = map[Kind]string{
	KindCheckoutSucceeded:         "9",
	KindReturnSucceeded:           "8",
	KindCheckoutFailed:            "7",
	KindReturnFailedNotCheckedOut: "6",
	KindResourceAvailable:         "5",
}

var fixedCode = map[Kind]string{
	KindUnknownError:          "001",
	KindAlreadyCheckedOut:     "004",
	KindAlreadyOnWaitlist:     "024",
	KindInvalidPhone:          "025",
	KindNotOnWaitlist:         "026",
	KindWaitlistLeft:          "997",
	KindWaitlistJoinFailed:    "990",
	KindWaitlistJoinSucceeded: "999",
}

func (k Kind) String() string { return string(k) }

func (k Kind) IsValid() bool {
	if _, ok := fixedCode[k]; ok {
		return true
	}
	_, ok := resourceCodePrefix[k]
	return ok
}

// CarriesResource reports whether outcomes of this kind name a resource.
func (k Kind) CarriesResource() bool {
	_, ok := resourceCodePrefix[k]
	return ok
}

// Outcome is the result of one engine request.
type Outcome struct {
	kind       Kind
	resourceID resource.ID
}

func UnknownError() Outcome       { return Outcome{kind: KindUnknownError} }
func AlreadyCheckedOut() Outcome  { return Outcome{kind: KindAlreadyCheckedOut} }
func AlreadyOnWaitlist() Outcome  { return Outcome{kind: KindAlreadyOnWaitlist} }
func InvalidPhone() Outcome       { return Outcome{kind: KindInvalidPhone} }
func WaitlistJoined() Outcome     { return Outcome{kind: KindWaitlistJoinSucceeded} }
func WaitlistJoinFailed() Outcome { return Outcome{kind: KindWaitlistJoinFailed} }
func WaitlistLeft() Outcome       { return Outcome{kind: KindWaitlistLeft} }
func NotOnWaitlist() Outcome      { return Outcome{kind: KindNotOnWaitlist} }

func CheckoutSucceeded(id resource.ID) Outcome { return resourceOutcome(KindCheckoutSucceeded, id) }
func CheckoutFailed(id resource.ID) Outcome    { return resourceOutcome(KindCheckoutFailed, id) }
func ReturnSucceeded(id resource.ID) Outcome   { return resourceOutcome(KindReturnSucceeded, id) }
func ResourceAvailable(id resource.ID) Outcome { return resourceOutcome(KindResourceAvailable, id) }

func ReturnFailedNotCheckedOut(id resource.ID) Outcome {
	return resourceOutcome(KindReturnFailedNotCheckedOut, id)
}

// resourceOutcome names id in the outcome. Ids the two digit code cannot hold
// are recorded as 00; the caller keeps the raw value in the entry detail.
func resourceOutcome(kind Kind, id resource.ID) Outcome {
	if !id.Encodable() {
		id = 0
	}
	return Outcome{kind: kind, resourceID: id}
}

// ReconstructOutcome rebuilds an outcome from its stored kind and resource id.
func ReconstructOutcome(kind Kind, id resource.ID) (Outcome, error) {
	if !kind.IsValid() {
		return Outcome{}, fmt.Errorf("unknown outcome kind %q", kind)
	}
	if !kind.CarriesResource() {
		return Outcome{kind: kind}, nil
	}
	return resourceOutcome(kind, id), nil
}

func (o Outcome) Kind() Kind { return o.kind }

// ResourceID returns the resource the outcome names, if any.
func (o Outcome) ResourceID() (resource.ID, bool) {
	if !o.kind.CarriesResource() {
		return 0, false
	}
	return o.resourceID, true
}

// Code is the three character numeric code: a family prefix plus the two digit
// resource id for resource outcomes, a fixed code otherwise.
func (o Outcome) Code() string {
	if prefix, ok := resourceCodePrefix[o.kind]; ok {
		return prefix + o.resourceID.Code()
	}
	if code, ok := fixedCode[o.kind]; ok {
		return code
	}
	return fixedCode[KindUnknownError]
}

func (o Outcome) String() string {
	if o.kind.CarriesResource() {
		return fmt.Sprintf("%s(%d)", o.kind, o.resourceID)
	}
	return string(o.kind)
}

func (o Outcome) IsSuccess() bool {
	switch o.kind {
	case KindCheckoutSucceeded, KindReturnSucceeded, KindWaitlistJoinSucceeded, KindWaitlistLeft:
		return true
	default:
		return false
	}
}

// IsConflict covers outcomes where current state already contradicts the request.
func (o Outcome) IsConflict() bool {
	switch o.kind {
	case KindAlreadyCheckedOut, KindAlreadyOnWaitlist, KindCheckoutFailed,
		KindReturnFailedNotCheckedOut, KindResourceAvailable, KindNotOnWaitlist:
		return true
	default:
		return false
	}
}

// IsValidationFailure covers kinds that only ever come from bad input. A
// CHECKOUT_FAILED or RETURN_FAILED may also stem from bad input; the engine
// reports that on its result.
func (o Outcome) IsValidationFailure() bool {
	return o.kind == KindInvalidPhone || o.kind == KindWaitlistJoinFailed
}

// Message is the human readable audit text for the outcome.
func (o Outcome) Message(userID string) string {
	code := o.resourceID.Code()
	switch o.kind {
	case KindAlreadyCheckedOut:
		return fmt.Sprintf("USER %s ALREADY EXISTS IN CHECKOUT", userID)
	case KindAlreadyOnWaitlist:
		return fmt.Sprintf("USER %s ALREADY EXISTS ON WAITLIST", userID)
	case KindInvalidPhone:
		return "INVALID PHONE NUMBER"
	case KindCheckoutSucceeded:
		return fmt.Sprintf("RESOURCE %s SUCCESSFULLY CHECKED OUT", code)
	case KindCheckoutFailed:
		return fmt.Sprintf("RESOURCE %s IS NOT AVAILABLE", code)
	case KindReturnSucceeded:
		return fmt.Sprintf("RESOURCE %s SUCCESSFULLY CHECKED IN", code)
	case KindReturnFailedNotCheckedOut:
		return fmt.Sprintf("RESOURCE %s IS NOT CHECKED OUT", code)
	case KindResourceAvailable:
		return fmt.Sprintf("RESOURCE %s IS AVAILABLE", code)
	case KindWaitlistJoinSucceeded:
		return fmt.Sprintf("USER %s ADDED TO THE WAITLIST", userID)
	case KindWaitlistJoinFailed:
		return fmt.Sprintf("USER %s NOT ADDED TO THE WAITLIST", userID)
	case KindWaitlistLeft:
		return fmt.Sprintf("USER %s REMOVED FROM THE WAITLIST", userID)
	case KindNotOnWaitlist:
		return fmt.Sprintf("USER %s IS NOT ON THE WAITLIST", userID)
	default:
		return "UNKNOWN ERROR"
	}
}
