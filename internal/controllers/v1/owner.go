package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/money"
	ez_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

type AvailableFunds struct {
	Available money.Money `json:"available" example:"812.50"`
}

type AvailableFundsResponse struct {
	Data AvailableFunds `json:"data"`
}

// RegisterOwnerRoutes registers the routes for owners with the
// RouterGroup that is passed.
func RegisterOwnerRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id/available", httputil.OptionsGet)
	r.GET("/:id/available", GetAvailableFunds)
}

// @Summary		Available funds
// @Description	Returns the owner's available funds pool, the sum of all positive envelope balances
// @Tags			Owners
// @Produce		json
// @Success		200	{object}	AvailableFundsResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/owners/{id}/available [get]
func GetAvailableFunds(c *gin.Context) {
	var uri struct {
		ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"`
	}

	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{httputil.ErrInvalidUUID.Error()})
		return
	}

	available, err := ledgerEngine.AvailableFunds(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, AvailableFundsResponse{Data: AvailableFunds{Available: available}})
}
