package repository

import (
	"context"

	"equipment-checkout/internal/infra/db"

	"github.com/jackc/pgx/v5/pgtype"
)

// Constraint names from migrations/001_initial_schema.sql.
const (
	ConstraintCheckoutsPkey      = "checkouts_pkey"
	ConstraintCheckoutsUserIDKey = "checkouts_user_id_key"
	ConstraintWaitlistPkey       = "waitlist_entries_pkey"
)

type Checkouts struct {
	ResourceID   int32
	UserID       string
	UserName     string
	CheckedOutAt pgtype.Timestamptz
}

type WaitlistEntries struct {
	UserID                string
	UserName              string
	AcceptableResourceIDs []int32
	Phone                 string
	RequestedAt           pgtype.Timestamptz
}

type AuditLogs struct {
	LogID      int64
	Code       string
	Outcome    string
	ResourceID pgtype.Int4
	UserID     pgtype.Text
	UserName   pgtype.Text
	Message    string
	Detail     string
	RecordedAt pgtype.Timestamptz
}

type InsertAuditLogParams struct {
	Code       string
	Outcome    string
	ResourceID pgtype.Int4
	UserID     pgtype.Text
	UserName   pgtype.Text
	Message    string
	Detail     string
	RecordedAt pgtype.Timestamptz
}

type ListAuditLogsParams struct {
	AfterID int64
	Limit   int32
}

// Queries holds the SQL for every table. It is stateless; the caller picks the DBTX.
type Queries struct{}

func NewQueries() *Queries {
	return &Queries{}
}

const insertCheckout = `-- name: InsertCheckout :exec
INSERT INTO checkouts (resource_id, user_id, user_name, checked_out_at)
VALUES ($1, $2, $3, $4)
`

func (q *Queries) InsertCheckout(ctx context.Context, dbtx db.DBTX, arg Checkouts) error {
	_, err := dbtx.Exec(ctx, insertCheckout, arg.ResourceID, arg.UserID, arg.UserName, arg.CheckedOutAt)
	return err
}

const deleteCheckout = `-- name: DeleteCheckout :one
DELETE FROM checkouts
WHERE resource_id = $1
RETURNING resource_id, user_id, user_name, checked_out_at
`

func (q *Queries) DeleteCheckout(ctx context.Context, dbtx db.DBTX, resourceID int32) (Checkouts, error) {
	row := dbtx.QueryRow(ctx, deleteCheckout, resourceID)
	var i Checkouts
	err := row.Scan(&i.ResourceID, &i.UserID, &i.UserName, &i.CheckedOutAt)
	return i, err
}

const getCheckoutByResource = `-- name: GetCheckoutByResource :one
SELECT resource_id, user_id, user_name, checked_out_at
FROM checkouts
WHERE resource_id = $1
`

func (q *Queries) GetCheckoutByResource(ctx context.Context, dbtx db.DBTX, resourceID int32) (Checkouts, error) {
	row := dbtx.QueryRow(ctx, getCheckoutByResource, resourceID)
	var i Checkouts
	err := row.Scan(&i.ResourceID, &i.UserID, &i.UserName, &i.CheckedOutAt)
	return i, err
}

const existsCheckoutByUser = `-- name: ExistsCheckoutByUser :one
SELECT EXISTS (SELECT 1 FROM checkouts WHERE user_id = $1)
`

func (q *Queries) ExistsCheckoutByUser(ctx context.Context, dbtx db.DBTX, userID string) (bool, error) {
	row := dbtx.QueryRow(ctx, existsCheckoutByUser, userID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const existsCheckoutByResource = `-- name: ExistsCheckoutByResource :one
SELECT EXISTS (SELECT 1 FROM checkouts WHERE resource_id = $1)
`

func (q *Queries) ExistsCheckoutByResource(ctx context.Context, dbtx db.DBTX, resourceID int32) (bool, error) {
	row := dbtx.QueryRow(ctx, existsCheckoutByResource, resourceID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const countCheckouts = `-- name: CountCheckouts :one
SELECT count(*) FROM checkouts
`

func (q *Queries) CountCheckouts(ctx context.Context, dbtx db.DBTX) (int64, error) {
	row := dbtx.QueryRow(ctx, countCheckouts)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const listCheckouts = `-- name: ListCheckouts :many
SELECT resource_id, user_id, user_name, checked_out_at
FROM checkouts
ORDER BY resource_id
`

func (q *Queries) ListCheckouts(ctx context.Context, dbtx db.DBTX) ([]Checkouts, error) {
	rows, err := dbtx.Query(ctx, listCheckouts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Checkouts
	for rows.Next() {
		var i Checkouts
		if err := rows.Scan(&i.ResourceID, &i.UserID, &i.UserName, &i.CheckedOutAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const insertWaitlistEntry = `-- name: InsertWaitlistEntry :exec
INSERT INTO waitlist_entries (user_id, user_name, acceptable_resource_ids, phone, requested_at)
VALUES ($1, $2, $3, $4, $5)
`

func (q *Queries) InsertWaitlistEntry(ctx context.Context, dbtx db.DBTX, arg WaitlistEntries) error {
	_, err := dbtx.Exec(ctx, insertWaitlistEntry,
		arg.UserID, arg.UserName, arg.AcceptableResourceIDs, arg.Phone, arg.RequestedAt)
	return err
}

const deleteWaitlistEntry = `-- name: DeleteWaitlistEntry :execrows
DELETE FROM waitlist_entries WHERE user_id = $1
`

func (q *Queries) DeleteWaitlistEntry(ctx context.Context, dbtx db.DBTX, userID string) (int64, error) {
	tag, err := dbtx.Exec(ctx, deleteWaitlistEntry, userID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const existsWaitlistEntry = `-- name: ExistsWaitlistEntry :one
SELECT EXISTS (SELECT 1 FROM waitlist_entries WHERE user_id = $1)
`

func (q *Queries) ExistsWaitlistEntry(ctx context.Context, dbtx db.DBTX, userID string) (bool, error) {
	row := dbtx.QueryRow(ctx, existsWaitlistEntry, userID)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const listWaitlistEntries = `-- name: ListWaitlistEntries :many
SELECT user_id, user_name, acceptable_resource_ids, phone, requested_at
FROM waitlist_entries
ORDER BY requested_at, user_id
`

func (q *Queries) ListWaitlistEntries(ctx context.Context, dbtx db.DBTX) ([]WaitlistEntries, error) {
	rows, err := dbtx.Query(ctx, listWaitlistEntries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []WaitlistEntries
	for rows.Next() {
		var i WaitlistEntries
		if err := rows.Scan(&i.UserID, &i.UserName, &i.AcceptableResourceIDs, &i.Phone, &i.RequestedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

// log_id comes from an identity sequence; nextval is atomic across sessions.
const insertAuditLog = `-- name: InsertAuditLog :one
INSERT INTO audit_logs (code, outcome, resource_id, user_id, user_name, message, detail, recorded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING log_id
`

func (q *Queries) InsertAuditLog(ctx context.Context, dbtx db.DBTX, arg InsertAuditLogParams) (int64, error) {
	row := dbtx.QueryRow(ctx, insertAuditLog,
		arg.Code, arg.Outcome, arg.ResourceID, arg.UserID, arg.UserName, arg.Message, arg.Detail, arg.RecordedAt)
	var logID int64
	err := row.Scan(&logID)
	return logID, err
}

const listAuditLogs = `-- name: ListAuditLogs :many
SELECT log_id, code, outcome, resource_id, user_id, user_name, message, detail, recorded_at
FROM audit_logs
WHERE log_id > $1
ORDER BY log_id
LIMIT $2
`

func (q *Queries) ListAuditLogs(ctx context.Context, dbtx db.DBTX, arg ListAuditLogsParams) ([]AuditLogs, error) {
	rows, err := dbtx.Query(ctx, listAuditLogs, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []AuditLogs
	for rows.Next() {
		var i AuditLogs
		if err := rows.Scan(
			&i.LogID,
			&i.Code,
			&i.Outcome,
			&i.ResourceID,
			&i.UserID,
			&i.UserName,
			&i.Message,
			&i.Detail,
			&i.RecordedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
