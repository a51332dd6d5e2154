package repository

import (
	"context"
	"math"

	"equipment-checkout/internal/domain/auditlog"
	"equipment-checkout/internal/infra"
	"equipment-checkout/internal/infra/db"
)

type AuditLogQueries interface {
	InsertAuditLog(ctx context.Context, dbtx db.DBTX, arg InsertAuditLogParams) (int64, error)
	ListAuditLogs(ctx context.Context, dbtx db.DBTX, arg ListAuditLogsParams) ([]AuditLogs, error)
}

type AuditLogRepository struct {
	queries AuditLogQueries
	db      db.DBTX
}

func NewAuditLogRepository(queries AuditLogQueries, dbtx db.DBTX) *AuditLogRepository {
	return &AuditLogRepository{
		queries: queries,
		db:      dbtx,
	}
}

func (r *AuditLogRepository) Append(ctx context.Context, entry *auditlog.Entry) (int64, error) {
	logID, err := r.queries.InsertAuditLog(ctx, r.db, auditLogToParams(entry))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to insert audit log", err)
	}
	return logID, nil
}

func (r *AuditLogRepository) List(ctx context.Context, afterID int64, limit int) ([]*auditlog.Entry, error) {
	if limit <= 0 || limit > math.MaxInt32 {
		limit = math.MaxInt32
	}

	rows, err := r.queries.ListAuditLogs(ctx, r.db, ListAuditLogsParams{
		AfterID: afterID,
		Limit:   int32(limit), // #nosec G115 -- clamped above
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list audit logs", err)
	}

	result := make([]*auditlog.Entry, 0, len(rows))
	for _, row := range rows {
		entry, err := auditLogFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt audit log row", err)
		}
		result = append(result, entry)
	}
	return result, nil
}
