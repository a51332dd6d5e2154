package request

import (
	"strings"

	"equipment-checkout/internal/domain/resource"
	"equipment-checkout/internal/usecase/commands"
)

// Only the shape is checked here, plus the id range an outcome code can carry.
// Content rules belong to the engine so that every rejected request still
// produces an audit entry.
type CheckoutRequest struct {
	ResourceID int    `json:"resource_id" binding:"required,min=1,max=99"`
	UserID     string `json:"user_id" binding:"required"`
	UserName   string `json:"user_name"`
}

func (r CheckoutRequest) ToParams() commands.CheckoutParams {
	return commands.CheckoutParams{
		ResourceID: resource.ID(r.ResourceID),
		UserID:     strings.TrimSpace(r.UserID),
		UserName:   strings.TrimSpace(r.UserName),
	}
}

type JoinWaitlistRequest struct {
	UserID                string `json:"user_id" binding:"required"`
	UserName              string `json:"user_name"`
	AcceptableResourceIDs []int  `json:"acceptable_resource_ids" binding:"dive,min=1,max=99"`
	Phone                 string `json:"phone"`
}

func (r JoinWaitlistRequest) ToParams() commands.JoinWaitlistParams {
	ids := make([]resource.ID, len(r.AcceptableResourceIDs))
	for i, id := range r.AcceptableResourceIDs {
		ids[i] = resource.ID(id)
	}

	return commands.JoinWaitlistParams{
		UserID:                strings.TrimSpace(r.UserID),
		UserName:              strings.TrimSpace(r.UserName),
		AcceptableResourceIDs: ids,
		Phone:                 r.Phone,
	}
}

type AuditLogListRequest struct {
	AfterID int64  `form:"after_id" binding:"omitempty,min=0"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Cursor  string `form:"cursor"`
}
