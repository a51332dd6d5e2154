package api

import (
	"net/http"

	"equipment-checkout/internal/domain/resource"
	reqdto "equipment-checkout/internal/handler/dto/request"
	resdto "equipment-checkout/internal/handler/dto/response"
	"equipment-checkout/internal/handler/httperr"
	"equipment-checkout/internal/pkg/errs"
	"equipment-checkout/internal/usecase/commands"
	"equipment-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
	q    queries.CheckoutQueries
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

// @Summary Check out a resource
// @Description Assign a resource to a user. The outcome is always audited.
// @Tags checkouts
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.OutcomeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} resdto.OutcomeResponse
// @Failure 422 {object} resdto.OutcomeResponse
// @Failure 500 {object} resdto.OutcomeResponse
// @Router /checkouts [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result := h.cmds.Checkout(c.Request.Context(), req.ToParams())
	writeOutcome(c, result, http.StatusCreated)
}

// @Summary Return a resource
// @Description Release the checkout of a resource, whoever holds it
// @Tags checkouts
// @Produce json
// @Param resource_id path int true "Resource ID"
// @Success 200 {object} resdto.OutcomeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} resdto.OutcomeResponse
// @Failure 422 {object} resdto.OutcomeResponse
// @Failure 500 {object} resdto.OutcomeResponse
// @Router /checkouts/{resource_id} [delete]
func (h *CheckoutHandler) Return(c *gin.Context) {
	id, err := resource.ParseID(c.Param("resource_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}

	result := h.cmds.Return(c.Request.Context(), commands.ReturnParams{ResourceID: id})
	writeOutcome(c, result, http.StatusOK)
}

// @Summary List active checkouts
// @Tags checkouts
// @Produce json
// @Success 200 {array} resdto.CheckoutResponse
// @Router /checkouts [get]
func (h *CheckoutHandler) List(c *gin.Context) {
	views, err := h.q.ListCheckouts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list checkouts", nil)
		return
	}

	response := make([]*resdto.CheckoutResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromCheckoutView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get the checkout of a resource
// @Tags checkouts
// @Produce json
// @Param resource_id path int true "Resource ID"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /checkouts/{resource_id} [get]
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, err := resource.ParseID(c.Param("resource_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource id", nil)
		return
	}

	view, err := h.q.GetCheckout(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrResourceOutOfRange):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown resource", nil)
		case errs.Is(err, queries.ErrCheckoutNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource is not checked out", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load checkout", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutView(view))
}

// @Summary List resources
// @Description Every resource in the pool with its availability and holder
// @Tags resources
// @Produce json
// @Success 200 {object} resdto.PoolResponse
// @Router /resources [get]
func (h *CheckoutHandler) ListResources(c *gin.Context) {
	view, err := h.q.GetPool(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load resources", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPoolView(view))
}
