//go:build unit || e2e

package dbtest

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB empties every table and restarts the audit log id sequence.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE checkouts, waitlist_entries, audit_logs RESTART IDENTITY")
	return err
}

func CountRows(ctx context.Context, db DBLike, table string) (int, error) {
	var n int
	err := db.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&n)
	return n, err
}

// AuditLogIDs returns every log id in ascending order.
func AuditLogIDs(ctx context.Context, db DBLike) ([]int64, error) {
	var ids []int64
	err := db.QueryRow(ctx, "SELECT coalesce(array_agg(log_id ORDER BY log_id), '{}') FROM audit_logs").Scan(&ids)
	return ids, err
}
