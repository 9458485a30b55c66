package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestAllocationRuleAmountXorPercentage() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: owner})

	amount := money.FromCents(10000)
	percentage := decimal.NewFromInt(20)

	err := models.DB.Create(&models.AllocationRule{
		OwnerID:    owner,
		EnvelopeID: envelope.ID,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrRuleAmountXorPercentage)

	err = models.DB.Create(&models.AllocationRule{
		OwnerID:    owner,
		EnvelopeID: envelope.ID,
		Amount:     &amount,
		Percentage: &percentage,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrRuleAmountXorPercentage)
}

func (suite *TestSuiteStandard) TestAllocationRuleAmountNotPositive() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: owner})
	amount := money.Zero

	err := models.DB.Create(&models.AllocationRule{
		OwnerID:    owner,
		EnvelopeID: envelope.ID,
		Amount:     &amount,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrRuleAmountNotPositive)
}

func (suite *TestSuiteStandard) TestAllocationRulePercentageOutOfRange() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: owner})

	for _, value := range []int64{0, 101} {
		percentage := decimal.NewFromInt(value)

		err := models.DB.Create(&models.AllocationRule{
			OwnerID:    owner,
			EnvelopeID: envelope.ID,
			Percentage: &percentage,
		}).Error

		assert.ErrorIs(suite.T(), err, models.ErrRulePercentageOutOfRange, "percentage %d should be rejected", value)
	}
}

func (suite *TestSuiteStandard) TestAllocationRuleEnvelopeIntegrity() {
	amount := money.FromCents(10000)

	err := models.DB.Create(&models.AllocationRule{
		OwnerID:    uuid.New(),
		EnvelopeID: uuid.New(),
		Amount:     &amount,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAllocationRuleIncomeSourceIntegrity() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: owner})
	amount := money.FromCents(10000)
	incomeSource := uuid.New()

	err := models.DB.Create(&models.AllocationRule{
		OwnerID:        owner,
		EnvelopeID:     envelope.ID,
		IncomeSourceID: &incomeSource,
		Amount:         &amount,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
