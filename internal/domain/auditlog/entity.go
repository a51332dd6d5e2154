package auditlog

import (
	"time"

	"equipment-checkout/internal/domain/resource"
)

// Entry is one immutable audit record. The id is assigned by the store on append.
type Entry struct {
	logID      int64
	outcome    Outcome
	userID     string
	userName   string
	message    string
	detail     string
	recordedAt time.Time
}

// NewEntry builds an unsaved entry. userID and userName may be empty for
// requests that are not tied to a user, such as returns.
func NewEntry(outcome Outcome, userID, userName, detail string, recordedAt time.Time) *Entry {
	return &Entry{
		outcome:    outcome,
		userID:     userID,
		userName:   userName,
		message:    outcome.Message(userID),
		detail:     detail,
		recordedAt: recordedAt,
	}
}

func ReconstructEntry(
	logID int64,
	outcome Outcome,
	userID, userName, message, detail string,
	recordedAt time.Time,
) *Entry {
	return &Entry{
		logID:      logID,
		outcome:    outcome,
		userID:     userID,
		userName:   userName,
		message:    message,
		detail:     detail,
		recordedAt: recordedAt,
	}
}

// WithLogID returns a copy carrying the id the store allocated. The receiver is not modified.
func (e *Entry) WithLogID(id int64) *Entry {
	cp := *e
	cp.logID = id
	return &cp
}

func (e *Entry) LogID() int64          { return e.logID }
func (e *Entry) Outcome() Outcome      { return e.outcome }
func (e *Entry) Code() string          { return e.outcome.Code() }
func (e *Entry) UserID() string        { return e.userID }
func (e *Entry) UserName() string      { return e.userName }
func (e *Entry) Message() string       { return e.message }
func (e *Entry) Detail() string        { return e.detail }
func (e *Entry) RecordedAt() time.Time { return e.recordedAt }
func (e *Entry) HasUser() bool         { return e.userID != "" }

// ResourceID is zero when the outcome names no resource.
func (e *Entry) ResourceID() resource.ID {
	id, _ := e.outcome.ResourceID()
	return id
}
