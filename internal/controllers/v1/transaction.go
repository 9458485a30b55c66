package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IncomeEditable represents all values needed to record an income
// transaction.
type IncomeEditable struct {
	OwnerID        uuid.UUID   `json:"ownerId"`
	IncomeSourceID uuid.UUID   `json:"incomeSourceId"`
	Amount         money.Money `json:"amount" example:"2500.00"`
	Description    string      `json:"description" example:"June salary"`
	OccurredOn     time.Time   `json:"occurredOn"`
}

// ExpenseEditable represents all values needed to record an expense
// transaction.
type ExpenseEditable struct {
	OwnerID     uuid.UUID   `json:"ownerId"`
	EnvelopeID  uuid.UUID   `json:"envelopeId"`
	Amount      money.Money `json:"amount" example:"32.17"`
	Description string      `json:"description" example:"Weekly groceries"`
	Payee       string      `json:"payee" example:"Morning Dew Grocers"`
	OccurredOn  time.Time   `json:"occurredOn"`
}

// TransferEditable represents all values needed to record a transfer
// transaction.
type TransferEditable struct {
	OwnerID               uuid.UUID   `json:"ownerId"`
	SourceEnvelopeID      uuid.UUID   `json:"sourceEnvelopeId"`
	DestinationEnvelopeID uuid.UUID   `json:"destinationEnvelopeId"`
	Amount                money.Money `json:"amount" example:"100.00"`
	Description           string      `json:"description" example:"Extra debt payment"`
	OccurredOn            time.Time   `json:"occurredOn"`
}

// AllocationEditable represents all values needed to record an
// allocation transaction.
type AllocationEditable struct {
	OwnerID     uuid.UUID   `json:"ownerId"`
	EnvelopeID  uuid.UUID   `json:"envelopeId"`
	Amount      money.Money `json:"amount" example:"200.00"`
	Description string      `json:"description" example:"Monthly groceries budget"`
	OccurredOn  time.Time   `json:"occurredOn"`
}

type TransactionResponse struct {
	Data models.Transaction `json:"data"`
}

type TransactionListResponse struct {
	Data []models.Transaction `json:"data"`
}

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", GetTransactions)

	r.OPTIONS("/income", httputil.OptionsPost)
	r.POST("/income", RecordIncome)

	r.OPTIONS("/expense", httputil.OptionsPost)
	r.POST("/expense", RecordExpense)

	r.OPTIONS("/transfer", httputil.OptionsPost)
	r.POST("/transfer", RecordTransfer)

	r.OPTIONS("/allocation", httputil.OptionsPost)
	r.POST("/allocation", RecordAllocation)

	r.OPTIONS("/:id", httputil.OptionsDelete)
	r.DELETE("/:id", ReverseTransaction)
}

// @Summary		Record income
// @Description	Records an income transaction. Income increases the available funds pool, no envelope balance changes.
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		IncomeEditable	true	"Transaction"
// @Router			/v1/transactions/income [post]
func RecordIncome(c *gin.Context) {
	var editable IncomeEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	id, err := ledgerEngine.RecordIncome(editable.OwnerID, editable.IncomeSourceID, editable.Amount, editable.Description, editable.OccurredOn)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	created(c, id)
}

// @Summary		Record expense
// @Description	Records an expense transaction against an envelope
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		ExpenseEditable	true	"Transaction"
// @Router			/v1/transactions/expense [post]
func RecordExpense(c *gin.Context) {
	var editable ExpenseEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	id, err := ledgerEngine.RecordExpense(editable.OwnerID, editable.EnvelopeID, editable.Amount, editable.Description, editable.Payee, editable.OccurredOn)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	created(c, id)
}

// @Summary		Record transfer
// @Description	Records a transfer transaction between two envelopes
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		TransferEditable	true	"Transaction"
// @Router			/v1/transactions/transfer [post]
func RecordTransfer(c *gin.Context) {
	var editable TransferEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	id, err := ledgerEngine.RecordTransfer(editable.OwnerID, editable.SourceEnvelopeID, editable.DestinationEnvelopeID, editable.Amount, editable.Description, editable.OccurredOn)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	created(c, id)
}

// @Summary		Record allocation
// @Description	Records an allocation transaction assigning available funds to an envelope
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		AllocationEditable	true	"Transaction"
// @Router			/v1/transactions/allocation [post]
func RecordAllocation(c *gin.Context) {
	var editable AllocationEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	id, err := ledgerEngine.RecordAllocation(editable.OwnerID, editable.EnvelopeID, editable.Amount, editable.Description, editable.OccurredOn)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	created(c, id)
}

// @Summary		List transactions
// @Description	Returns a list of transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			owner		query		string	true	"Filter by owner"
// @Param			envelope	query		string	false	"Filter by envelope"
// @Param			kind		query		string	false	"Filter by kind"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	owner, err := ownerParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	query := models.DB.Where("owner_id = ?", owner)

	if envelope, ok := c.GetQuery("envelope"); ok {
		id, err := uuid.Parse(envelope)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{httputil.ErrInvalidUUID.Error()})
			return
		}

		query = query.Where("envelope_id = ? OR source_envelope_id = ? OR destination_envelope_id = ?", id, id, id)
	}

	if kind, ok := c.GetQuery("kind"); ok {
		query = query.Where("kind = ?", kind)
	}

	var transactions []models.Transaction
	err = query.Order("occurred_on DESC, created_at DESC").Find(&transactions).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

// @Summary		Reverse transaction
// @Description	Reverses a transaction. The inverse balance deltas are applied and the transaction is tombstoned.
// @Tags			Transactions
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			owner	query		string	true	"Owner of the transaction"
// @Router			/v1/transactions/{id} [delete]
func ReverseTransaction(c *gin.Context) {
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

	err = ledgerEngine.Reverse(uri.ID.UUID, owner)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// created responds with the stored transaction record.
func created(c *gin.Context, id uuid.UUID) {
	var transaction models.Transaction
	err := models.DB.First(&transaction, "id = ?", id).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: transaction})
}
