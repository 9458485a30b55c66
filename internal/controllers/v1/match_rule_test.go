package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/test"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestMatchRuleCreate() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: owner})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/match-rules", map[string]any{
		"ownerId":    owner,
		"envelopeId": envelope.ID,
		"match":      "Bank*",
		"priority":   10,
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Bank*", response.Data.Match)
}

func (suite *TestSuiteStandard) TestMatchRuleCreateUnknownEnvelope() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/match-rules", map[string]any{
		"ownerId":    uuid.New(),
		"envelopeId": uuid.New(),
		"match":      "Bank*",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMatchRuleListAndDelete() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: owner})
	rule := suite.createTestMatchRule(models.MatchRule{OwnerID: owner, EnvelopeID: envelope.ID, Match: "Bank*"})

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?owner=%s", owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/match-rules/%s?owner=%s", rule.ID, owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
}
