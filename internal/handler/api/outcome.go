package api

import (
	"net/http"

	resdto "equipment-checkout/internal/handler/dto/response"
	"equipment-checkout/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// statusFor maps an engine outcome to an HTTP status. successStatus is used for
// outcomes that changed state.
func statusFor(r commands.Result, successStatus int) int {
	switch {
	case r.Outcome.IsSuccess():
		return successStatus
	case r.InvalidInput, r.Outcome.IsValidationFailure():
		return http.StatusUnprocessableEntity
	case r.Outcome.IsConflict():
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeOutcome(c *gin.Context, r commands.Result, successStatus int) {
	c.JSON(statusFor(r, successStatus), resdto.FromResult(r))
}
