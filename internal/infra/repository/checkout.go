package repository

import (
	"context"

	"equipment-checkout/internal/domain/checkout"
	"equipment-checkout/internal/domain/resource"
	"equipment-checkout/internal/infra"
	"equipment-checkout/internal/infra/db"
	"equipment-checkout/internal/pkg/errs"
	"equipment-checkout/internal/pkg/pgconv"
)

type CheckoutQueries interface {
	InsertCheckout(ctx context.Context, dbtx db.DBTX, arg Checkouts) error
	DeleteCheckout(ctx context.Context, dbtx db.DBTX, resourceID int32) (Checkouts, error)
	GetCheckoutByResource(ctx context.Context, dbtx db.DBTX, resourceID int32) (Checkouts, error)
	ExistsCheckoutByUser(ctx context.Context, dbtx db.DBTX, userID string) (bool, error)
	ExistsCheckoutByResource(ctx context.Context, dbtx db.DBTX, resourceID int32) (bool, error)
	CountCheckouts(ctx context.Context, dbtx db.DBTX) (int64, error)
	ListCheckouts(ctx context.Context, dbtx db.DBTX) ([]Checkouts, error)
}

// CheckoutRepository is the PostgreSQL checkout ledger. The primary key on
// resource_id and the unique key on user_id turn Reserve into a conditional insert.
type CheckoutRepository struct {
	queries CheckoutQueries
	db      db.DBTX
}

func NewCheckoutRepository(queries CheckoutQueries, dbtx db.DBTX) *CheckoutRepository {
	return &CheckoutRepository{
		queries: queries,
		db:      dbtx,
	}
}

func (r *CheckoutRepository) HasActiveCheckout(ctx context.Context, userID string) (bool, error) {
	exists, err := r.queries.ExistsCheckoutByUser(ctx, r.db, userID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up checkout by user", err)
	}
	return exists, nil
}

func (r *CheckoutRepository) IsCheckedOut(ctx context.Context, id resource.ID) (bool, error) {
	exists, err := r.queries.ExistsCheckoutByResource(ctx, r.db, int32(id)) // #nosec G115 -- bounded by pool capacity
	if err != nil {
		return false, infra.WrapRepoErr("failed to look up checkout by resource", err)
	}
	return exists, nil
}

func (r *CheckoutRepository) ActiveCount(ctx context.Context) (int, error) {
	count, err := r.queries.CountCheckouts(ctx, r.db)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count checkouts", err)
	}
	return int(count), nil
}

func (r *CheckoutRepository) Reserve(ctx context.Context, rec *checkout.Record) error {
	err := r.queries.InsertCheckout(ctx, r.db, checkoutToRow(rec))
	if err == nil {
		return nil
	}

	if constraint, ok := pgconv.UniqueViolation(err); ok {
		switch constraint {
		case ConstraintCheckoutsUserIDKey:
			return errs.Mark(infra.WrapRepoErr("user already holds a checkout", err, infra.KindDuplicateKey), errs.ErrAlreadyCheckedOut)
		default:
			return errs.Mark(infra.WrapRepoErr("resource already checked out", err, infra.KindDuplicateKey), errs.ErrResourceUnavailable)
		}
	}
	return infra.WrapRepoErr("failed to insert checkout", err)
}

func (r *CheckoutRepository) Release(ctx context.Context, id resource.ID) (*checkout.Record, error) {
	row, err := r.queries.DeleteCheckout(ctx, r.db, int32(id)) // #nosec G115 -- bounded by pool capacity
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("no active checkout for resource", err, infra.KindNotFound), errs.ErrNotCheckedOut)
		}
		return nil, infra.WrapRepoErr("failed to delete checkout", err)
	}
	return checkoutFromRow(row), nil
}

func (r *CheckoutRepository) FindByResource(ctx context.Context, id resource.ID) (*checkout.Record, error) {
	row, err := r.queries.GetCheckoutByResource(ctx, r.db, int32(id)) // #nosec G115 -- bounded by pool capacity
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("no active checkout for resource", err, infra.KindNotFound), errs.ErrNotCheckedOut)
		}
		return nil, infra.WrapRepoErr("failed to find checkout", err)
	}
	return checkoutFromRow(row), nil
}

func (r *CheckoutRepository) List(ctx context.Context) ([]*checkout.Record, error) {
	rows, err := r.queries.ListCheckouts(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list checkouts", err)
	}

	result := make([]*checkout.Record, len(rows))
	for i, row := range rows {
		result[i] = checkoutFromRow(row)
	}
	return result, nil
}
