package repository

import (
	"equipment-checkout/internal/domain/auditlog"
	"equipment-checkout/internal/domain/checkout"
	"equipment-checkout/internal/domain/resource"
	"equipment-checkout/internal/domain/waitlist"
	"equipment-checkout/internal/pkg/pgconv"
)

func checkoutToRow(rec *checkout.Record) Checkouts {
	return Checkouts{
		ResourceID:   int32(rec.ResourceID()), // #nosec G115 -- bounded by pool capacity
		UserID:       rec.UserID(),
		UserName:     rec.UserName(),
		CheckedOutAt: pgconv.TimeToPgtype(rec.CheckedAt()),
	}
}

func checkoutFromRow(row Checkouts) *checkout.Record {
	return checkout.ReconstructRecord(
		resource.ID(row.ResourceID),
		row.UserID,
		row.UserName,
		pgconv.TimeFromPgtype(row.CheckedOutAt),
	)
}

func waitlistToRow(e *waitlist.Entry) WaitlistEntries {
	ids := e.AcceptableResourceIDs()
	acceptable := make([]int32, len(ids))
	for i, id := range ids {
		acceptable[i] = int32(id) // #nosec G115 -- bounded by pool capacity
	}

	return WaitlistEntries{
		UserID:                e.UserID(),
		UserName:              e.UserName(),
		AcceptableResourceIDs: acceptable,
		Phone:                 e.Phone().String(),
		RequestedAt:           pgconv.TimeToPgtype(e.RequestedAt()),
	}
}

func waitlistFromRow(row WaitlistEntries) *waitlist.Entry {
	ids := make([]resource.ID, len(row.AcceptableResourceIDs))
	for i, id := range row.AcceptableResourceIDs {
		ids[i] = resource.ID(id)
	}

	return waitlist.ReconstructEntry(
		row.UserID,
		row.UserName,
		ids,
		row.Phone,
		pgconv.TimeFromPgtype(row.RequestedAt),
	)
}

func auditLogToParams(e *auditlog.Entry) InsertAuditLogParams {
	return InsertAuditLogParams{
		Code:       e.Code(),
		Outcome:    e.Outcome().Kind().String(),
		ResourceID: pgconv.Int4OrNull(e.ResourceID().Int()),
		UserID:     pgconv.TextOrNull(e.UserID()),
		UserName:   pgconv.TextOrNull(e.UserName()),
		Message:    e.Message(),
		Detail:     e.Detail(),
		RecordedAt: pgconv.TimeToPgtype(e.RecordedAt()),
	}
}

func auditLogFromRow(row AuditLogs) (*auditlog.Entry, error) {
	outcome, err := auditlog.ReconstructOutcome(auditlog.Kind(row.Outcome), resource.ID(pgconv.IntFromPgtype(row.ResourceID)))
	if err != nil {
		return nil, err
	}

	return auditlog.ReconstructEntry(
		row.LogID,
		outcome,
		pgconv.StringFromPgtype(row.UserID),
		pgconv.StringFromPgtype(row.UserName),
		row.Message,
		row.Detail,
		pgconv.TimeFromPgtype(row.RecordedAt),
	), nil
}
