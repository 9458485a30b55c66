package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/centsible/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestTransactionIncome() {
	owner := uuid.New()
	source := suite.createTestIncomeSource(models.IncomeSource{OwnerID: owner})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions/income", map[string]any{
		"ownerId":        owner,
		"incomeSourceId": source.ID,
		"amount":         "2500.00",
		"description":    "June salary",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(models.TransactionKindIncome, response.Data.Kind)
	suite.Assert().True(response.Data.Amount.Equal(money.FromCents(250000)))
	suite.Assert().False(response.Data.OccurredOn.IsZero())
}

func (suite *TestSuiteStandard) TestTransactionIncomeUnknownSource() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions/income", map[string]any{
		"ownerId":        uuid.New(),
		"incomeSourceId": uuid.New(),
		"amount":         "2500.00",
		"description":    "June salary",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionExpense() {
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: uuid.New(), Balance: money.FromCents(50000)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions/expense", map[string]any{
		"ownerId":     envelope.OwnerID,
		"envelopeId":  envelope.ID,
		"amount":      "173.20",
		"description": "Weekly groceries",
		"payee":       "Morning Dew Grocers",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var updated models.Envelope
	suite.Require().Nil(models.DB.First(&updated, "id = ?", envelope.ID).Error)
	suite.Assert().True(updated.Balance.Equal(money.FromCents(32680)))
}

func (suite *TestSuiteStandard) TestTransactionExpenseInsufficientFunds() {
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: uuid.New(), Balance: money.FromCents(100)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions/expense", map[string]any{
		"ownerId":     envelope.OwnerID,
		"envelopeId":  envelope.ID,
		"amount":      "2.00",
		"description": "Too much",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionTransfer() {
	owner := uuid.New()
	source := suite.createTestEnvelope(models.Envelope{OwnerID: owner, Balance: money.FromCents(30000)})
	destination := suite.createTestEnvelope(models.Envelope{OwnerID: owner})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions/transfer", map[string]any{
		"ownerId":               owner,
		"sourceEnvelopeId":      source.ID,
		"destinationEnvelopeId": destination.ID,
		"amount":                "120.00",
		"description":           "Shifting budget",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestTransactionTransferSameEnvelope() {
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: uuid.New(), Balance: money.FromCents(30000)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions/transfer", map[string]any{
		"ownerId":               envelope.OwnerID,
		"sourceEnvelopeId":      envelope.ID,
		"destinationEnvelopeId": envelope.ID,
		"amount":                "1.00",
		"description":           "Nonsense",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionAllocation() {
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: uuid.New()})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions/allocation", map[string]any{
		"ownerId":     envelope.OwnerID,
		"envelopeId":  envelope.ID,
		"amount":      "200.00",
		"description": "Monthly groceries budget",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var updated models.Envelope
	suite.Require().Nil(models.DB.First(&updated, "id = ?", envelope.ID).Error)
	suite.Assert().True(updated.Balance.Equal(money.FromCents(20000)))
}

func (suite *TestSuiteStandard) TestTransactionList() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: owner})

	for i := 1; i <= 3; i++ {
		recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions/allocation", map[string]any{
			"ownerId":     owner,
			"envelopeId":  envelope.ID,
			"amount":      "10.00",
			"description": fmt.Sprintf("Allocation %d", i),
		})
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	}

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?owner=%s", owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 3)

	// Filtering by envelope
	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?owner=%s&envelope=%s", owner, uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 0)
}

func (suite *TestSuiteStandard) TestTransactionReverse() {
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: uuid.New(), Balance: money.FromCents(50000)})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions/expense", map[string]any{
		"ownerId":     envelope.OwnerID,
		"envelopeId":  envelope.ID,
		"amount":      "173.20",
		"description": "Weekly groceries",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s?owner=%s", response.Data.ID, envelope.OwnerID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	var updated models.Envelope
	suite.Require().Nil(models.DB.First(&updated, "id = ?", envelope.ID).Error)
	suite.Assert().True(updated.Balance.Equal(money.FromCents(50000)))

	// Reversing again fails, the transaction is gone
	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s?owner=%s", response.Data.ID, envelope.OwnerID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
