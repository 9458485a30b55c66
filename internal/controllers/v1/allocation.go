package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/allocation"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/money"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AllocationRunEditable represents all values needed to run the
// automatic allocation of an income amount.
type AllocationRunEditable struct {
	OwnerID        uuid.UUID   `json:"ownerId"`
	IncomeSourceID uuid.UUID   `json:"incomeSourceId"`
	Amount         money.Money `json:"amount" example:"2500.00"`
}

type AllocationRunResponse struct {
	Data []allocation.Allocated `json:"data"`
}

type PercentageBudgetResponse struct {
	Data allocation.PercentageBudget `json:"data"`
}

// RegisterAllocationRoutes registers the routes for allocation runs
// with the RouterGroup that is passed.
func RegisterAllocationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/run", httputil.OptionsPost)
	r.POST("/run", RunAllocation)

	r.OPTIONS("/validate", httputil.OptionsGet)
	r.GET("/validate", ValidateAllocation)
}

// @Summary		Run allocation
// @Description	Distributes an income amount across envelopes according to the owner's automatic allocation rules
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationRunResponse
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			run	body		AllocationRunEditable	true	"Allocation run"
// @Router			/v1/allocations/run [post]
func RunAllocation(c *gin.Context) {
	var editable AllocationRunEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	applied, err := allocationEngine.Run(editable.OwnerID, editable.IncomeSourceID, editable.Amount)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, AllocationRunResponse{Data: applied})
}

// @Summary		Validate allocation rules
// @Description	Sums the percentages of the automatic allocation rules in scope and reports whether they exceed 100
// @Tags			Allocations
// @Produce		json
// @Success		200				{object}	PercentageBudgetResponse
// @Failure		400				{object}	httpError
// @Failure		500				{object}	httpError
// @Param			owner			query		string	true	"Owner of the rules"
// @Param			incomeSource	query		string	false	"Restrict to rules matching this income source"
// @Router			/v1/allocations/validate [get]
func ValidateAllocation(c *gin.Context) {
	owner, err := ownerParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var incomeSource *uuid.UUID
	if raw, ok := c.GetQuery("incomeSource"); ok {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{httputil.ErrInvalidUUID.Error()})
			return
		}

		incomeSource = &id
	}

	budget, err := allocationEngine.ValidatePercentageBudget(owner, incomeSource)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, PercentageBudgetResponse{Data: budget})
}
