package checkout

import (
	"errors"
	"strings"
	"time"

	"equipment-checkout/internal/domain/resource"
)

var (
	ErrEmptyUserID   = errors.New("user id cannot be empty")
	ErrEmptyUserName = errors.New("user name cannot be empty")
	ErrInvalidID     = errors.New("resource id must be positive")
)

// Record is an active assignment of one resource to one user.
type Record struct {
	resourceID resource.ID
	userID     string
	userName   string
	checkedAt  time.Time
}

func NewRecord(resourceID resource.ID, userID, userName string, checkedAt time.Time) (*Record, error) {
	if resourceID < 1 {
		return nil, ErrInvalidID
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return nil, ErrEmptyUserName
	}

	return &Record{
		resourceID: resourceID,
		userID:     userID,
		userName:   userName,
		checkedAt:  checkedAt,
	}, nil
}

// ReconstructRecord rebuilds a record read back from a store without validation.
func ReconstructRecord(resourceID resource.ID, userID, userName string, checkedAt time.Time) *Record {
	return &Record{
		resourceID: resourceID,
		userID:     userID,
		userName:   userName,
		checkedAt:  checkedAt,
	}
}

func (r *Record) ResourceID() resource.ID { return r.resourceID }
func (r *Record) UserID() string          { return r.userID }
func (r *Record) UserName() string        { return r.userName }
func (r *Record) CheckedAt() time.Time    { return r.checkedAt }
