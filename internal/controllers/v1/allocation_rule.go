package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationRuleEditable represents all values of an AllocationRule
// that can be set on creation.
type AllocationRuleEditable struct {
	OwnerID        uuid.UUID        `json:"ownerId"`
	EnvelopeID     uuid.UUID        `json:"envelopeId"`
	IncomeSourceID *uuid.UUID       `json:"incomeSourceId"`
	Amount         *money.Money     `json:"amount"`
	Percentage     *decimal.Decimal `json:"percentage" example:"20"`
	Automatic      bool             `json:"automatic" example:"true"`
	Priority       uint             `json:"priority" example:"10"`
	Description    string           `json:"description" example:"Rent first"`
}

func (editable AllocationRuleEditable) model() models.AllocationRule {
	return models.AllocationRule{
		OwnerID:        editable.OwnerID,
		EnvelopeID:     editable.EnvelopeID,
		IncomeSourceID: editable.IncomeSourceID,
		Amount:         editable.Amount,
		Percentage:     editable.Percentage,
		Automatic:      editable.Automatic,
		Priority:       editable.Priority,
		Description:    editable.Description,
	}
}

type AllocationRuleResponse struct {
	Data models.AllocationRule `json:"data"`
}

type AllocationRuleListResponse struct {
	Data []models.AllocationRule `json:"data"`
}

// RegisterAllocationRuleRoutes registers the routes for allocation
// rules with the RouterGroup that is passed.
func RegisterAllocationRuleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetAllocationRules)
	r.POST("", CreateAllocationRule)

	r.OPTIONS("/:id", httputil.OptionsDelete)
	r.DELETE("/:id", DeleteAllocationRule)
}

// @Summary		Create allocation rule
// @Description	Creates a new allocation rule
// @Tags			Allocations
// @Produce		json
// @Success		201		{object}	AllocationRuleResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			rule	body		AllocationRuleEditable	true	"Allocation rule"
// @Router			/v1/allocation-rules [post]
func CreateAllocationRule(c *gin.Context) {
	var editable AllocationRuleEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	rule := editable.model()
	err = models.DB.Create(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusCreated, AllocationRuleResponse{Data: rule})
}

// @Summary		List allocation rules
// @Description	Returns a list of allocation rules in their run order
// @Tags			Allocations
// @Produce		json
// @Success		200		{object}	AllocationRuleListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			owner	query		string	true	"Filter by owner"
// @Router			/v1/allocation-rules [get]
func GetAllocationRules(c *gin.Context) {
	owner, err := ownerParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var rules []models.AllocationRule
	err = models.DB.
		Where("owner_id = ?", owner).
		Order("priority DESC, created_at ASC").
		Find(&rules).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, AllocationRuleListResponse{Data: rules})
}

// @Summary		Delete allocation rule
// @Description	Deletes an allocation rule
// @Tags			Allocations
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			owner	query		string	true	"Owner of the rule"
// @Router			/v1/allocation-rules/{id} [delete]
func DeleteAllocationRule(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{httputil.ErrInvalidUUID.Error()})
		return
	}

	owner, err := ownerParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var rule models.AllocationRule
	err = models.DB.First(&rule, "id = ? AND owner_id = ?", uri.ID.UUID, owner).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	err = models.DB.Delete(&rule).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
