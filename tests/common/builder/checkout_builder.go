//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"equipment-checkout/internal/domain/auditlog"
	"equipment-checkout/internal/domain/checkout"
	"equipment-checkout/internal/domain/resource"
	"equipment-checkout/internal/domain/waitlist"
	reqdto "equipment-checkout/internal/handler/dto/request"
	"equipment-checkout/internal/usecase/commands"
)

var defaultTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type CheckoutBuilder struct {
	resourceID int
	userID     string
	userName   string
	at         time.Time
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		resourceID: 1,
		userID:     "e1001",
		userName:   "Ada Lovelace",
		at:         defaultTime,
	}
}

func (b *CheckoutBuilder) WithResource(id int) *CheckoutBuilder {
	b.resourceID = id
	return b
}

func (b *CheckoutBuilder) WithUser(id, name string) *CheckoutBuilder {
	b.userID = id
	b.userName = name
	return b
}

// WithUserIndex derives a distinct user from n, for bulk scenarios.
func (b *CheckoutBuilder) WithUserIndex(n int) *CheckoutBuilder {
	return b.WithUser(fmt.Sprintf("e%04d", n), fmt.Sprintf("User %d", n))
}

func (b *CheckoutBuilder) At(t time.Time) *CheckoutBuilder {
	b.at = t
	return b
}

func (b *CheckoutBuilder) BuildRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		ResourceID: b.resourceID,
		UserID:     b.userID,
		UserName:   b.userName,
	}
}

func (b *CheckoutBuilder) BuildParams() commands.CheckoutParams {
	return commands.CheckoutParams{
		ResourceID:  resource.ID(b.resourceID),
		UserID:      b.userID,
		UserName:    b.userName,
		RequestedAt: b.at,
	}
}

func (b *CheckoutBuilder) BuildDomain() *checkout.Record {
	return checkout.ReconstructRecord(resource.ID(b.resourceID), b.userID, b.userName, b.at)
}

type WaitlistBuilder struct {
	userID     string
	userName   string
	acceptable []int
	phone      string
	at         time.Time
}

func NewWaitlistBuilder() *WaitlistBuilder {
	return &WaitlistBuilder{
		userID:     "e2001",
		userName:   "Grace Hopper",
		acceptable: []int{1, 2},
		phone:      "(555) 010-2030",
		at:         defaultTime,
	}
}

func (b *WaitlistBuilder) WithUser(id, name string) *WaitlistBuilder {
	b.userID = id
	b.userName = name
	return b
}

func (b *WaitlistBuilder) WithAcceptable(ids ...int) *WaitlistBuilder {
	b.acceptable = ids
	return b
}

func (b *WaitlistBuilder) WithPhone(phone string) *WaitlistBuilder {
	b.phone = phone
	return b
}

func (b *WaitlistBuilder) BuildRequestDTO() reqdto.JoinWaitlistRequest {
	return reqdto.JoinWaitlistRequest{
		UserID:                b.userID,
		UserName:              b.userName,
		AcceptableResourceIDs: b.acceptable,
		Phone:                 b.phone,
	}
}

func (b *WaitlistBuilder) BuildParams() commands.JoinWaitlistParams {
	return commands.JoinWaitlistParams{
		UserID:                b.userID,
		UserName:              b.userName,
		AcceptableResourceIDs: b.ids(),
		Phone:                 b.phone,
		RequestedAt:           b.at,
	}
}

// BuildDomain panics on an invalid phone; use it only with valid builder state.
func (b *WaitlistBuilder) BuildDomain() *waitlist.Entry {
	phone, err := waitlist.NewPhone(b.phone)
	if err != nil {
		panic(err)
	}
	entry, err := waitlist.NewEntry(b.userID, b.userName, b.ids(), phone, b.at)
	if err != nil {
		panic(err)
	}
	return entry
}

func (b *WaitlistBuilder) ids() []resource.ID {
	ids := make([]resource.ID, len(b.acceptable))
	for i, id := range b.acceptable {
		ids[i] = resource.ID(id)
	}
	return ids
}

// NewAuditEntry builds a stored entry with the given id.
func NewAuditEntry(logID int64, outcome auditlog.Outcome, userID string) *auditlog.Entry {
	return auditlog.NewEntry(outcome, userID, "", "", defaultTime).WithLogID(logID)
}
