package waitlist

import (
	"errors"
	"strings"
	"time"

	"equipment-checkout/internal/domain/resource"
	"equipment-checkout/internal/pkg/errs"
)

var (
	ErrEmptyUserID   = errors.New("user id cannot be empty")
	ErrEmptyUserName = errors.New("user name cannot be empty")
)

// Entry is a pending request for any one of several acceptable resources.
type Entry struct {
	userID      string
	userName    string
	acceptable  []resource.ID
	phone       Phone
	requestedAt time.Time
}

func NewEntry(userID, userName string, acceptable []resource.ID, phone Phone, requestedAt time.Time) (*Entry, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrEmptyUserID
	}
	userName = strings.TrimSpace(userName)
	if userName == "" {
		return nil, ErrEmptyUserName
	}
	if phone.IsZero() {
		return nil, errs.ErrInvalidPhone
	}

	ids := DedupeIDs(acceptable)
	if len(ids) == 0 {
		return nil, errs.ErrNoAcceptableUnits
	}

	return &Entry{
		userID:      userID,
		userName:    userName,
		acceptable:  ids,
		phone:       phone,
		requestedAt: requestedAt,
	}, nil
}

// ReconstructEntry rebuilds an entry read back from a store without validation.
func ReconstructEntry(userID, userName string, acceptable []resource.ID, phone string, requestedAt time.Time) *Entry {
	return &Entry{
		userID:      userID,
		userName:    userName,
		acceptable:  acceptable,
		phone:       Phone{digits: phone},
		requestedAt: requestedAt,
	}
}

// DedupeIDs keeps the first occurrence of each id and preserves caller order.
func DedupeIDs(ids []resource.ID) []resource.ID {
	seen := make(map[resource.ID]struct{}, len(ids))
	out := make([]resource.ID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (e *Entry) Accepts(id resource.ID) bool {
	for _, a := range e.acceptable {
		if a == id {
			return true
		}
	}
	return false
}

func (e *Entry) UserID() string         { return e.userID }
func (e *Entry) UserName() string       { return e.userName }
func (e *Entry) Phone() Phone           { return e.phone }
func (e *Entry) RequestedAt() time.Time { return e.requestedAt }

func (e *Entry) AcceptableResourceIDs() []resource.ID {
	out := make([]resource.ID, len(e.acceptable))
	copy(out, e.acceptable)
	return out
}
