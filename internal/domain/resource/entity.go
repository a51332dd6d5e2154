package resource

import (
	"context"
	"fmt"
	"strconv"

	"equipment-checkout/internal/pkg/errs"
)

// ID identifies one unit of the fixed pool. Valid ids are 1..capacity.
type ID int

// MaxID is the largest id a two digit outcome code can carry, and so the
// largest pool capacity.
const MaxID ID = 99

func (id ID) Int() int { return int(id) }

// Code renders the id the way outcome codes embed it: two digits, zero padded.
func (id ID) Code() string {
	return fmt.Sprintf("%02d", int(id))
}

// Encodable reports whether the id fits the two digit code.
func (id ID) Encodable() bool {
	return id >= 0 && id <= MaxID
}

func (id ID) String() string {
	return strconv.Itoa(int(id))
}

// ParseID reads a resource id from a path segment. Anything that is not a
// number in 1..MaxID is rejected.
func ParseID(s string) (ID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.Mark(errs.Wrapf(err, "parse resource id %q", s), errs.ErrResourceOutOfRange)
	}
	if n < 1 || n > int(MaxID) {
		return 0, errs.Mark(errs.New(fmt.Sprintf("resource id %d is outside 1..%d", n, MaxID)), errs.ErrResourceOutOfRange)
	}
	return ID(n), nil
}

// Occupancy is the read-only view of the checkout ledger that the pool derives availability from.
type Occupancy interface {
	IsCheckedOut(ctx context.Context, id ID) (bool, error)
	ActiveCount(ctx context.Context) (int, error)
}

type Pool struct {
	capacity  int
	occupancy Occupancy
}

func NewPool(capacity int, occupancy Occupancy) *Pool {
	return &Pool{
		capacity:  capacity,
		occupancy: occupancy,
	}
}

func (p *Pool) Capacity() int { return p.capacity }

func (p *Pool) Contains(id ID) bool {
	return id >= 1 && int(id) <= p.capacity
}

func (p *Pool) Validate(id ID) error {
	if !p.Contains(id) {
		return errs.Mark(errs.New(fmt.Sprintf("resource %d is outside 1..%d", id, p.capacity)), errs.ErrResourceOutOfRange)
	}
	return nil
}

func (p *Pool) ActiveCount(ctx context.Context) (int, error) {
	return p.occupancy.ActiveCount(ctx)
}

// IsAvailable reports whether id is free. The capacity clause is a backstop;
// it only matters if the one-record-per-resource invariant was ever broken.
func (p *Pool) IsAvailable(ctx context.Context, id ID) (bool, error) {
	if !p.Contains(id) {
		return false, nil
	}

	taken, err := p.occupancy.IsCheckedOut(ctx, id)
	if err != nil {
		return false, err
	}
	if taken {
		return false, nil
	}

	active, err := p.occupancy.ActiveCount(ctx)
	if err != nil {
		return false, err
	}
	return active < p.capacity, nil
}

// IDs lists every resource in the pool in ascending order.
func (p *Pool) IDs() []ID {
	ids := make([]ID, p.capacity)
	for i := range ids {
		ids[i] = ID(i + 1)
	}
	return ids
}
