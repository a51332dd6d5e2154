//go:build unit

package auditlog_test

import (
	"testing"
	"time"

	"equipment-checkout/internal/domain/auditlog"
	"equipment-checkout/internal/domain/resource"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeCode(t *testing.T) {
	tests := []struct {
		name    string
		outcome auditlog.Outcome
		code    string
	}{
		{name: "unknown error", outcome: auditlog.UnknownError(), code: "001"},
		{name: "already checked out", outcome: auditlog.AlreadyCheckedOut(), code: "004"},
		{name: "already on waitlist", outcome: auditlog.AlreadyOnWaitlist(), code: "024"},
		{name: "invalid phone", outcome: auditlog.InvalidPhone(), code: "025"},
		{name: "not on waitlist", outcome: auditlog.NotOnWaitlist(), code: "026"},
		{name: "waitlist joined", outcome: auditlog.WaitlistJoined(), code: "999"},
		{name: "waitlist join failed", outcome: auditlog.WaitlistJoinFailed(), code: "990"},
		{name: "waitlist left", outcome: auditlog.WaitlistLeft(), code: "997"},
		{name: "checkout succeeded pads id", outcome: auditlog.CheckoutSucceeded(5), code: "905"},
		{name: "checkout succeeded two digits", outcome: auditlog.CheckoutSucceeded(18), code: "918"},
		{name: "checkout failed", outcome: auditlog.CheckoutFailed(12), code: "712"},
		{name: "return succeeded", outcome: auditlog.ReturnSucceeded(1), code: "801"},
		{name: "return failed", outcome: auditlog.ReturnFailedNotCheckedOut(9), code: "609"},
		{name: "resource available", outcome: auditlog.ResourceAvailable(3), code: "503"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.outcome.Code())
		})
	}
}

func TestOutcomeCode_IdsOutsideTheCodeRange(t *testing.T) {
	tests := []struct {
		name    string
		outcome auditlog.Outcome
		code    string
	}{
		{name: "negative return", outcome: auditlog.ReturnFailedNotCheckedOut(-5), code: "600"},
		{name: "huge checkout", outcome: auditlog.CheckoutFailed(3000000000), code: "700"},
		{name: "just past the range", outcome: auditlog.CheckoutSucceeded(resource.MaxID + 1), code: "900"},
		{name: "largest encodable", outcome: auditlog.ResourceAvailable(resource.MaxID), code: "599"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.outcome.Code())
			assert.Len(t, tt.outcome.Code(), 3)
		})
	}

	o, err := auditlog.ReconstructOutcome(auditlog.KindReturnFailedNotCheckedOut, -5)
	require.NoError(t, err)
	assert.Equal(t, "600", o.Code())
}

func TestOutcomeClassification(t *testing.T) {
	tests := []struct {
		name       string
		outcome    auditlog.Outcome
		success    bool
		conflict   bool
		validation bool
	}{
		{name: "checkout succeeded", outcome: auditlog.CheckoutSucceeded(1), success: true},
		{name: "return succeeded", outcome: auditlog.ReturnSucceeded(1), success: true},
		{name: "waitlist joined", outcome: auditlog.WaitlistJoined(), success: true},
		{name: "waitlist left", outcome: auditlog.WaitlistLeft(), success: true},
		{name: "checkout failed", outcome: auditlog.CheckoutFailed(1), conflict: true},
		{name: "already checked out", outcome: auditlog.AlreadyCheckedOut(), conflict: true},
		{name: "resource available", outcome: auditlog.ResourceAvailable(1), conflict: true},
		{name: "not on waitlist", outcome: auditlog.NotOnWaitlist(), conflict: true},
		{name: "invalid phone", outcome: auditlog.InvalidPhone(), validation: true},
		{name: "join failed", outcome: auditlog.WaitlistJoinFailed(), validation: true},
		{name: "unknown error", outcome: auditlog.UnknownError()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.success, tt.outcome.IsSuccess())
			assert.Equal(t, tt.conflict, tt.outcome.IsConflict())
			assert.Equal(t, tt.validation, tt.outcome.IsValidationFailure())
		})
	}
}

func TestOutcomeMessage(t *testing.T) {
	assert.Equal(t, "RESOURCE 04 SUCCESSFULLY CHECKED OUT", auditlog.CheckoutSucceeded(4).Message("e1"))
	assert.Equal(t, "RESOURCE 04 IS NOT AVAILABLE", auditlog.CheckoutFailed(4).Message("e1"))
	assert.Equal(t, "RESOURCE 11 SUCCESSFULLY CHECKED IN", auditlog.ReturnSucceeded(11).Message(""))
	assert.Equal(t, "RESOURCE 11 IS NOT CHECKED OUT", auditlog.ReturnFailedNotCheckedOut(11).Message(""))
	assert.Equal(t, "USER e1 ALREADY EXISTS IN CHECKOUT", auditlog.AlreadyCheckedOut().Message("e1"))
	assert.Equal(t, "USER e1 ADDED TO THE WAITLIST", auditlog.WaitlistJoined().Message("e1"))
	assert.Equal(t, "INVALID PHONE NUMBER", auditlog.InvalidPhone().Message("e1"))
	assert.Equal(t, "UNKNOWN ERROR", auditlog.UnknownError().Message("e1"))
}

func TestReconstructOutcome(t *testing.T) {
	t.Run("resource kind keeps its id", func(t *testing.T) {
		o, err := auditlog.ReconstructOutcome(auditlog.KindCheckoutSucceeded, 7)
		require.NoError(t, err)
		id, ok := o.ResourceID()
		assert.True(t, ok)
		assert.Equal(t, resource.ID(7), id)
		assert.Equal(t, "907", o.Code())
	})

	t.Run("fixed kind drops the id", func(t *testing.T) {
		o, err := auditlog.ReconstructOutcome(auditlog.KindWaitlistLeft, 7)
		require.NoError(t, err)
		_, ok := o.ResourceID()
		assert.False(t, ok)
		assert.Equal(t, "997", o.Code())
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := auditlog.ReconstructOutcome("BOGUS", 0)
		assert.Error(t, err)
	})
}

func TestEntry(t *testing.T) {
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	entry := auditlog.NewEntry(auditlog.CheckoutSucceeded(3), "e1", "Ada", "", at)

	assert.Zero(t, entry.LogID())
	assert.Equal(t, "903", entry.Code())
	assert.Equal(t, "RESOURCE 03 SUCCESSFULLY CHECKED OUT", entry.Message())
	assert.Equal(t, resource.ID(3), entry.ResourceID())
	assert.True(t, entry.HasUser())

	stored := entry.WithLogID(12)
	assert.Equal(t, int64(12), stored.LogID())
	assert.Zero(t, entry.LogID(), "WithLogID must not modify the receiver")
	assert.Equal(t, entry.Message(), stored.Message())
}
