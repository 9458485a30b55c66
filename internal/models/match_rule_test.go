package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMatchRuleMatchEmpty() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: owner})

	err := models.DB.Create(&models.MatchRule{
		OwnerID:    owner,
		EnvelopeID: envelope.ID,
		Match:      "  ",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrMatchRuleMatchEmpty)
}

func (suite *TestSuiteStandard) TestMatchRuleEnvelopeIntegrity() {
	err := models.DB.Create(&models.MatchRule{
		OwnerID:    uuid.New(),
		EnvelopeID: uuid.New(),
		Match:      "Bank*",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSuggestEnvelope() {
	owner := uuid.New()
	groceries := suite.createTestEnvelope(models.Envelope{OwnerID: owner, Name: "Groceries"})
	transport := suite.createTestEnvelope(models.Envelope{OwnerID: owner, Name: "Transport"})

	_ = suite.createTestMatchRule(models.MatchRule{
		OwnerID:    owner,
		EnvelopeID: groceries.ID,
		Priority:   2,
		Match:      "*Grocers",
	})
	_ = suite.createTestMatchRule(models.MatchRule{
		OwnerID:    owner,
		EnvelopeID: transport.ID,
		Priority:   1,
		Match:      "Morning*",
	})

	// Both rules match, the lower priority value wins
	envelope, err := models.SuggestEnvelope(models.DB, owner, "Morning Dew Grocers")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), transport.ID, envelope.ID)

	envelope, err = models.SuggestEnvelope(models.DB, owner, "Corner Grocers")
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), groceries.ID, envelope.ID)
}

func (suite *TestSuiteStandard) TestSuggestEnvelopeNoMatch() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: owner})

	_ = suite.createTestMatchRule(models.MatchRule{
		OwnerID:    owner,
		EnvelopeID: envelope.ID,
		Match:      "Bank*",
	})

	_, err := models.SuggestEnvelope(models.DB, owner, "Morning Dew Grocers")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestSuggestEnvelopeScopedToOwner() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: owner})

	_ = suite.createTestMatchRule(models.MatchRule{
		OwnerID:    owner,
		EnvelopeID: envelope.ID,
		Match:      "*",
	})

	_, err := models.SuggestEnvelope(models.DB, uuid.New(), "Anything")
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
