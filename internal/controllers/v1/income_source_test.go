package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestIncomeSourceCreate() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/income-sources", map[string]any{
		"ownerId": uuid.New(),
		"name":    "ACME Corp salary",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.IncomeSourceResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("ACME Corp salary", response.Data.Name)
}

func (suite *TestSuiteStandard) TestIncomeSourceCreateDuplicate() {
	owner := uuid.New()
	_ = suite.createTestIncomeSource(models.IncomeSource{OwnerID: owner, Name: "Salary"})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/income-sources", map[string]any{
		"ownerId": owner,
		"name":    "Salary",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestIncomeSourceListAndDelete() {
	owner := uuid.New()
	source := suite.createTestIncomeSource(models.IncomeSource{OwnerID: owner})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/income-sources?owner=%s", owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.IncomeSourceListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/income-sources/%s?owner=%s", source.ID, owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}
