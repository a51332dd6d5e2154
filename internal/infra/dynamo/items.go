package dynamo

import (
	"strconv"
	"time"

	"equipment-checkout/internal/domain/auditlog"
	"equipment-checkout/internal/domain/checkout"
	"equipment-checkout/internal/domain/resource"
	"equipment-checkout/internal/domain/waitlist"
)

type checkoutItem struct {
	ResourceID int    `dynamodbav:"bb"`
	UserID     string `dynamodbav:"eid"`
	UserName   string `dynamodbav:"name"`
	Time       string `dynamodbav:"time"`
}

type waitlistItem struct {
	UserID    string `dynamodbav:"eid"`
	UserName  string `dynamodbav:"name"`
	Requested []int  `dynamodbav:"requested_bb"`
	Phone     string `dynamodbav:"phone"`
	Time      string `dynamodbav:"time"`
}

type auditLogItem struct {
	LogID      int64  `dynamodbav:"log_id"`
	Code       string `dynamodbav:"code"`
	Outcome    string `dynamodbav:"outcome"`
	ResourceID int    `dynamodbav:"bb,omitempty"`
	UserID     string `dynamodbav:"eid,omitempty"`
	UserName   string `dynamodbav:"name,omitempty"`
	Message    string `dynamodbav:"message"`
	Detail     string `dynamodbav:"detail,omitempty"`
	Time       string `dynamodbav:"time"`
}

type metaItem struct {
	Name  string `dynamodbav:"name"`
	Value int64  `dynamodbav:"value,omitempty"`
}

func itoa(n int) string { return strconv.Itoa(n) }

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func newCheckoutItem(rec *checkout.Record) checkoutItem {
	return checkoutItem{
		ResourceID: rec.ResourceID().Int(),
		UserID:     rec.UserID(),
		UserName:   rec.UserName(),
		Time:       formatTime(rec.CheckedAt()),
	}
}

func (i checkoutItem) toDomain() *checkout.Record {
	return checkout.ReconstructRecord(resource.ID(i.ResourceID), i.UserID, i.UserName, parseTime(i.Time))
}

func newWaitlistItem(e *waitlist.Entry) waitlistItem {
	ids := e.AcceptableResourceIDs()
	requested := make([]int, len(ids))
	for i, id := range ids {
		requested[i] = id.Int()
	}
	return waitlistItem{
		UserID:    e.UserID(),
		UserName:  e.UserName(),
		Requested: requested,
		Phone:     e.Phone().String(),
		Time:      formatTime(e.RequestedAt()),
	}
}

func (i waitlistItem) toDomain() *waitlist.Entry {
	ids := make([]resource.ID, len(i.Requested))
	for n, id := range i.Requested {
		ids[n] = resource.ID(id)
	}
	return waitlist.ReconstructEntry(i.UserID, i.UserName, ids, i.Phone, parseTime(i.Time))
}

func newAuditLogItem(logID int64, e *auditlog.Entry) auditLogItem {
	return auditLogItem{
		LogID:      logID,
		Code:       e.Code(),
		Outcome:    e.Outcome().Kind().String(),
		ResourceID: e.ResourceID().Int(),
		UserID:     e.UserID(),
		UserName:   e.UserName(),
		Message:    e.Message(),
		Detail:     e.Detail(),
		Time:       formatTime(e.RecordedAt()),
	}
}

func (i auditLogItem) toDomain() (*auditlog.Entry, error) {
	outcome, err := auditlog.ReconstructOutcome(auditlog.Kind(i.Outcome), resource.ID(i.ResourceID))
	if err != nil {
		return nil, err
	}
	return auditlog.ReconstructEntry(i.LogID, outcome, i.UserID, i.UserName, i.Message, i.Detail, parseTime(i.Time)), nil
}
