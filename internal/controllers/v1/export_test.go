package v1_test

import (
	"net/http"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/centsible/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestExport() {
	_ = suite.createTestEnvelope(models.Envelope{OwnerID: uuid.New(), Balance: money.FromCents(100)})
	_ = suite.createTestIncomeSource(models.IncomeSource{OwnerID: uuid.New()})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Len(response.Data, len(models.Registry))
	suite.Assert().Contains(response.Data, "Envelope")
	suite.Assert().Contains(response.Data, "IncomeSource")
}
