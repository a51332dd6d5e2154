package queries

import (
	"time"
)

// ResourceView is one unit of the pool with its current holder, if any.
type ResourceView struct {
	ID           int        `json:"id"`
	Code         string     `json:"code"`
	Available    bool       `json:"available"`
	HolderID     string     `json:"holder_id,omitempty"`
	HolderName   string     `json:"holder_name,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
}

type PoolView struct {
	Capacity  int             `json:"capacity"`
	Active    int             `json:"active"`
	Resources []*ResourceView `json:"resources"`
}

type CheckoutView struct {
	ResourceID   int       `json:"resource_id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	CheckedOutAt time.Time `json:"checked_out_at"`
}

type WaitlistEntryView struct {
	UserID                string    `json:"user_id"`
	UserName              string    `json:"user_name"`
	AcceptableResourceIDs []int     `json:"acceptable_resource_ids"`
	Phone                 string    `json:"phone"`
	RequestedAt           time.Time `json:"requested_at"`
}

type AuditLogView struct {
	LogID      int64     `json:"log_id"`
	Code       string    `json:"code"`
	Outcome    string    `json:"outcome"`
	ResourceID *int      `json:"resource_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	UserName   string    `json:"user_name,omitempty"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

type AuditLogPage struct {
	Entries    []*AuditLogView `json:"entries"`
	NextCursor string          `json:"next_cursor,omitempty"`
	HasMore    bool            `json:"has_more"`
}
