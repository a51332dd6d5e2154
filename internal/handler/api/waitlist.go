package api

import (
	"net/http"
	"strings"

	reqdto "equipment-checkout/internal/handler/dto/request"
	resdto "equipment-checkout/internal/handler/dto/response"
	"equipment-checkout/internal/handler/httperr"
	"equipment-checkout/internal/usecase/commands"
	"equipment-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WaitlistHandler struct {
	cmds commands.CheckoutCommands
	q    queries.CheckoutQueries
}

func NewWaitlistHandler(cmds commands.CheckoutCommands, q queries.CheckoutQueries) *WaitlistHandler {
	return &WaitlistHandler{cmds: cmds, q: q}
}

// @Summary Join the waitlist
// @Description Register interest in any of the listed resources. Rejected when one is free.
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body reqdto.JoinWaitlistRequest true "Waitlist request"
// @Success 201 {object} resdto.OutcomeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} resdto.OutcomeResponse
// @Failure 422 {object} resdto.OutcomeResponse
// @Failure 500 {object} resdto.OutcomeResponse
// @Router /waitlist [post]
func (h *WaitlistHandler) Join(c *gin.Context) {
	var req reqdto.JoinWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result := h.cmds.JoinWaitlist(c.Request.Context(), req.ToParams())
	writeOutcome(c, result, http.StatusCreated)
}

// @Summary Leave the waitlist
// @Tags waitlist
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 409 {object} resdto.OutcomeResponse
// @Failure 500 {object} resdto.OutcomeResponse
// @Router /waitlist/{user_id} [delete]
func (h *WaitlistHandler) Leave(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("user_id"))

	result := h.cmds.LeaveWaitlist(c.Request.Context(), commands.LeaveWaitlistParams{UserID: userID})
	writeOutcome(c, result, http.StatusOK)
}

// @Summary List the waitlist
// @Description Entries oldest first
// @Tags waitlist
// @Produce json
// @Success 200 {array} resdto.WaitlistEntryResponse
// @Router /waitlist [get]
func (h *WaitlistHandler) List(c *gin.Context) {
	views, err := h.q.ListWaitlist(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list waitlist", nil)
		return
	}

	response := make([]*resdto.WaitlistEntryResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromWaitlistEntryView(v)
	}
	c.JSON(http.StatusOK, response)
}
