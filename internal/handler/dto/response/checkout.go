package response

import (
	"time"

	"equipment-checkout/internal/usecase/commands"
	"equipment-checkout/internal/usecase/queries"
)

// OutcomeResponse is the body of every command endpoint.
type OutcomeResponse struct {
	Code       string `json:"code"`
	Outcome    string `json:"outcome"`
	ResourceID *int   `json:"resource_id,omitempty"`
	Message    string `json:"message"`
	LogID      int64  `json:"log_id"`
}

func FromResult(r commands.Result) *OutcomeResponse {
	resp := &OutcomeResponse{
		Code:    r.Outcome.Code(),
		Outcome: r.Outcome.Kind().String(),
		Message: r.Message,
		LogID:   r.LogID,
	}
	if id, ok := r.Outcome.ResourceID(); ok {
		n := id.Int()
		resp.ResourceID = &n
	}
	return resp
}

type ResourceResponse struct {
	ID           int        `json:"id"`
	Code         string     `json:"code"`
	Available    bool       `json:"available"`
	HolderID     string     `json:"holder_id,omitempty"`
	HolderName   string     `json:"holder_name,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
}

type PoolResponse struct {
	Capacity  int                 `json:"capacity"`
	Active    int                 `json:"active"`
	Resources []*ResourceResponse `json:"resources"`
}

func FromPoolView(v *queries.PoolView) *PoolResponse {
	resources := make([]*ResourceResponse, len(v.Resources))
	for i, r := range v.Resources {
		resources[i] = &ResourceResponse{
			ID:           r.ID,
			Code:         r.Code,
			Available:    r.Available,
			HolderID:     r.HolderID,
			HolderName:   r.HolderName,
			CheckedOutAt: r.CheckedOutAt,
		}
	}
	return &PoolResponse{
		Capacity:  v.Capacity,
		Active:    v.Active,
		Resources: resources,
	}
}

type CheckoutResponse struct {
	ResourceID   int       `json:"resource_id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	CheckedOutAt time.Time `json:"checked_out_at"`
}

func FromCheckoutView(v *queries.CheckoutView) *CheckoutResponse {
	return &CheckoutResponse{
		ResourceID:   v.ResourceID,
		UserID:       v.UserID,
		UserName:     v.UserName,
		CheckedOutAt: v.CheckedOutAt,
	}
}

type WaitlistEntryResponse struct {
	UserID                string    `json:"user_id"`
	UserName              string    `json:"user_name"`
	AcceptableResourceIDs []int     `json:"acceptable_resource_ids"`
	Phone                 string    `json:"phone"`
	RequestedAt           time.Time `json:"requested_at"`
}

func FromWaitlistEntryView(v *queries.WaitlistEntryView) *WaitlistEntryResponse {
	return &WaitlistEntryResponse{
		UserID:                v.UserID,
		UserName:              v.UserName,
		AcceptableResourceIDs: v.AcceptableResourceIDs,
		Phone:                 v.Phone,
		RequestedAt:           v.RequestedAt,
	}
}

type AuditLogResponse struct {
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

type AuditLogPageResponse struct {
	Entries    []*AuditLogResponse `json:"entries"`
	NextCursor string              `json:"next_cursor,omitempty"`
	HasMore    bool                `json:"has_more"`
}

func FromAuditLogPage(p *queries.AuditLogPage) *AuditLogPageResponse {
	entries := make([]*AuditLogResponse, len(p.Entries))
	for i, e := range p.Entries {
		entries[i] = &AuditLogResponse{
			LogID:      e.LogID,
			Code:       e.Code,
			Outcome:    e.Outcome,
			ResourceID: e.ResourceID,
			UserID:     e.UserID,
			UserName:   e.UserName,
			Message:    e.Message,
			Detail:     e.Detail,
			RecordedAt: e.RecordedAt,
		}
	}
	return &AuditLogPageResponse{
		Entries:    entries,
		NextCursor: p.NextCursor,
		HasMore:    p.HasMore,
	}
}
