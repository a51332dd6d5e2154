package repository

import (
	"context"

	"equipment-checkout/internal/domain/waitlist"
	"equipment-checkout/internal/infra"
	"equipment-checkout/internal/infra/db"
	"equipment-checkout/internal/pkg/errs"
	"equipment-checkout/internal/pkg/pgconv"
)

type WaitlistQueries interface {
	InsertWaitlistEntry(ctx context.Context, dbtx db.DBTX, arg WaitlistEntries) error
	DeleteWaitlistEntry(ctx context.Context, dbtx db.DBTX, userID string) (int64, error)
	ExistsWaitlistEntry(ctx context.Context, dbtx db.DBTX, userID string) (bool, error)
	ListWaitlistEntries(ctx context.Context, dbtx db.DBTX) ([]WaitlistEntries, error)
}

type WaitlistRepository struct {
	queries WaitlistQueries
	db      db.DBTX
}

func NewWaitlistRepository(queries WaitlistQueries, dbtx db.DBTX) *WaitlistRepository {
	return &WaitlistRepository{
		queries: queries,
		db:      dbtx,
	}
}

func (r *WaitlistRepository) HasEntry(ctx context.Context, userID string) (bool, error) {
	exists, err := r.queries.ExistsWaitlistEntry(ctx, r.db, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up waitlist entry", err)
	}
	return exists, nil
}

func (r *WaitlistRepository) Add(ctx context.Context, entry *waitlist.Entry) error {
	err := r.queries.InsertWaitlistEntry(ctx, r.db, waitlistToRow(entry))
	if err == nil {
		return nil
	}
	if _, ok := pgconv.UniqueViolation(err); ok {
		return errs.Mark(infra.WrapRepoErr("user already on waitlist", err, infra.KindDuplicateKey), errs.ErrAlreadyOnWaitlist)
	}
	return infra.WrapRepoErr("failed to insert waitlist entry", err)
}

func (r *WaitlistRepository) Remove(ctx context.Context, userID string) error {
	affected, err := r.queries.DeleteWaitlistEntry(ctx, r.db, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete waitlist entry", err)
	}
	if affected == 0 {
		return errs.Mark(infra.NewRepoErr(infra.KindNotFound, "user not on waitlist"), errs.ErrNotOnWaitlist)
	}
	return nil
}

func (r *WaitlistRepository) List(ctx context.Context) ([]*waitlist.Entry, error) {
	rows, err := r.queries.ListWaitlistEntries(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list waitlist entries", err)
	}

	result := make([]*waitlist.Entry, len(rows))
	for i, row := range rows {
		result[i] = waitlistFromRow(row)
	}
	return result, nil
}
