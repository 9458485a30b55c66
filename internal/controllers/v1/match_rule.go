package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MatchRuleEditable represents all values of a MatchRule that can be
// set on creation.
type MatchRuleEditable struct {
	OwnerID    uuid.UUID `json:"ownerId"`
	EnvelopeID uuid.UUID `json:"envelopeId"`
	Priority   uint      `json:"priority" example:"10"`
	Match      string    `json:"match" example:"Bank*"`
}

func (editable MatchRuleEditable) model() models.MatchRule {
	return models.MatchRule{
		OwnerID:    editable.OwnerID,
		EnvelopeID: editable.EnvelopeID,
		Priority:   editable.Priority,
		Match:      editable.Match,
	}
}

type MatchRuleResponse struct {
	Data models.MatchRule `json:"data"`
}

type MatchRuleListResponse struct {
	Data []models.MatchRule `json:"data"`
}

// RegisterMatchRuleRoutes registers the routes for match rules with
// the RouterGroup that is passed.
func RegisterMatchRuleRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetMatchRules)
	r.POST("", CreateMatchRule)

	r.OPTIONS("/:id", httputil.OptionsDelete)
	r.DELETE("/:id", DeleteMatchRule)
}

// @Summary		Create match rule
// @Description	Creates a new match rule
// @Tags			MatchRules
// @Produce		json
// @Success		201		{object}	MatchRuleResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			rule	body		MatchRuleEditable	true	"Match rule"
// @Router			/v1/match-rules [post]
func CreateMatchRule(c *gin.Context) {
	var editable MatchRuleEditable
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

	c.JSON(http.StatusCreated, MatchRuleResponse{Data: rule})
}

// @Summary		List match rules
// @Description	Returns a list of match rules in their match order
// @Tags			MatchRules
// @Produce		json
// @Success		200		{object}	MatchRuleListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			owner	query		string	true	"Filter by owner"
// @Router			/v1/match-rules [get]
func GetMatchRules(c *gin.Context) {
	owner, err := ownerParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var rules []models.MatchRule
	err = models.DB.
		Where(&models.MatchRule{OwnerID: owner}).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, MatchRuleListResponse{Data: rules})
}

// @Summary		Delete match rule
// @Description	Deletes a match rule
// @Tags			MatchRules
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			owner	query		string	true	"Owner of the match rule"
// @Router			/v1/match-rules/{id} [delete]
func DeleteMatchRule(c *gin.Context) {
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

	var rule models.MatchRule
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
