package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EnvelopeEditable represents all values of an Envelope that can be set on creation.
type EnvelopeEditable struct {
	OwnerID        uuid.UUID           `json:"ownerId"`
	CategoryID     *uuid.UUID          `json:"categoryId"`
	Name           string              `json:"name" example:"Groceries"`
	Kind           models.EnvelopeKind `json:"kind" example:"regular" enums:"regular,savings,debt"`
	Balance        money.Money         `json:"balance" example:"250.00"`
	TargetAmount   *money.Money        `json:"targetAmount"`
	TargetDate     *time.Time          `json:"targetDate"`
	Rate           *decimal.Decimal    `json:"rate" example:"17.9"`
	MinimumPayment *money.Money        `json:"minimumPayment"`
	Note           string              `json:"note" example:"Everything we eat"`
	Archived       bool                `json:"archived" example:"false"`
}

func (editable EnvelopeEditable) model() models.Envelope {
	return models.Envelope{
		OwnerID:        editable.OwnerID,
		CategoryID:     editable.CategoryID,
		Name:           editable.Name,
		Kind:           editable.Kind,
		Balance:        editable.Balance,
		TargetAmount:   editable.TargetAmount,
		TargetDate:     editable.TargetDate,
		Rate:           editable.Rate,
		MinimumPayment: editable.MinimumPayment,
		Note:           editable.Note,
		Archived:       editable.Archived,
	}
}

type EnvelopeResponse struct {
	Data models.Envelope `json:"data"`
}

type EnvelopeListResponse struct {
	Data []models.Envelope `json:"data"`
}

// RegisterEnvelopeRoutes registers the routes for envelopes with
// the RouterGroup that is passed.
func RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetEnvelopes)
	r.POST("", CreateEnvelope)

	r.OPTIONS("/suggest", httputil.OptionsGet)
	r.GET("/suggest", SuggestEnvelope)

	r.OPTIONS("/:id", httputil.OptionsGetDelete)
	r.GET("/:id", GetEnvelope)
	r.DELETE("/:id", DeleteEnvelope)

	registerProjectionRoutes(r)
}

// @Summary		Create envelope
// @Description	Creates a new envelope
// @Tags			Envelopes
// @Produce		json
// @Success		201			{object}	EnvelopeResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			envelope	body		EnvelopeEditable	true	"Envelope"
// @Router			/v1/envelopes [post]
func CreateEnvelope(c *gin.Context) {
	var editable EnvelopeEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	envelope := editable.model()
	err = models.DB.Create(&envelope).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusCreated, EnvelopeResponse{Data: envelope})
}

// @Summary		List envelopes
// @Description	Returns a list of envelopes
// @Tags			Envelopes
// @Produce		json
// @Success		200			{object}	EnvelopeListResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			owner		query		string	true	"Filter by owner"
// @Param			kind		query		string	false	"Filter by kind"
// @Param			archived	query		bool	false	"Is the envelope archived?"
// @Router			/v1/envelopes [get]
func GetEnvelopes(c *gin.Context) {
	owner, err := ownerParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	query := models.DB.Where(&models.Envelope{OwnerID: owner})

	if kind, ok := c.GetQuery("kind"); ok {
		query = query.Where("kind = ?", kind)
	}

	if archived, ok := c.GetQuery("archived"); ok {
		query = query.Where("archived = ?", archived == "true")
	}

	var envelopes []models.Envelope
	err = query.Order("name ASC").Find(&envelopes).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, EnvelopeListResponse{Data: envelopes})
}

// @Summary		Get envelope
// @Description	Returns a specific envelope
// @Tags			Envelopes
// @Produce		json
// @Success		200		{object}	EnvelopeResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			owner	query		string	true	"Owner of the envelope"
// @Router			/v1/envelopes/{id} [get]
func GetEnvelope(c *gin.Context) {
	envelope, err := envelopeFromRequest(c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, EnvelopeResponse{Data: envelope})
}

// @Summary		Delete envelope
// @Description	Deletes an envelope. Envelopes that still hold money cannot be deleted.
// @Tags			Envelopes
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			owner	query		string	true	"Owner of the envelope"
// @Router			/v1/envelopes/{id} [delete]
func DeleteEnvelope(c *gin.Context) {
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

	err = ledgerEngine.DeleteEnvelope(owner, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Suggest envelope
// @Description	Suggests an envelope for a payee based on the owner's match rules
// @Tags			Envelopes
// @Produce		json
// @Success		200		{object}	EnvelopeResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			owner	query		string	true	"Owner of the match rules"
// @Param			payee	query		string	true	"Payee to suggest an envelope for"
// @Router			/v1/envelopes/suggest [get]
func SuggestEnvelope(c *gin.Context) {
	owner, err := ownerParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	envelope, err := models.SuggestEnvelope(models.DB, owner, c.Query("payee"))
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, EnvelopeResponse{Data: envelope})
}

// envelopeFromRequest loads the envelope the request references, scoped
// to the owner from the query string.
func envelopeFromRequest(c *gin.Context) (models.Envelope, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return models.Envelope{}, httputil.ErrInvalidUUID
	}

	owner, err := ownerParam(c)
	if err != nil {
		return models.Envelope{}, err
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, "id = ? AND owner_id = ?", uri.ID.UUID, owner).Error
	return envelope, err
}
