package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/centsible/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAvailableFunds() {
	owner := uuid.New()
	_ = suite.createTestEnvelope(models.Envelope{OwnerID: owner, Balance: money.FromCents(50000)})
	_ = suite.createTestEnvelope(models.Envelope{OwnerID: owner, Balance: money.FromCents(31250)})

	rate := decimal.NewFromInt(18)
	_ = suite.createTestEnvelope(models.Envelope{
		OwnerID: owner,
		Kind:    models.EnvelopeKindDebt,
		Balance: money.FromCents(-20000),
		Rate:    &rate,
	})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/owners/%s/available", owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.AvailableFundsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Available.Equal(money.FromCents(81250)))
}

func (suite *TestSuiteStandard) TestAvailableFundsInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/owners/not-a-uuid/available", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
