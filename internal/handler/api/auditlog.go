package api

import (
	"net/http"

	reqdto "equipment-checkout/internal/handler/dto/request"
	resdto "equipment-checkout/internal/handler/dto/response"
	"equipment-checkout/internal/handler/httperr"
	"equipment-checkout/internal/pkg/errs"
	"equipment-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuditLogHandler struct {
	q queries.CheckoutQueries
}

func NewAuditLogHandler(q queries.CheckoutQueries) *AuditLogHandler {
	return &AuditLogHandler{q: q}
}

// @Summary List audit log entries
// @Description Entries in log id order. Pass next_cursor back as cursor for the following page.
// @Tags audit-logs
// @Produce json
// @Param after_id query int false "Return entries with a larger log id"
// @Param limit query int false "Page size (1-200, default 50)"
// @Param cursor query string false "Opaque cursor from a previous page"
// @Success 200 {object} resdto.AuditLogPageResponse
// @Failure 400 {object} httperr.Response
// @Router /audit-logs [get]
func (h *AuditLogHandler) List(c *gin.Context) {
	var req reqdto.AuditLogListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	page, err := h.q.ListAuditLogs(c.Request.Context(), req.Cursor, req.AfterID, req.Limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list audit logs", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuditLogPage(page))
}
