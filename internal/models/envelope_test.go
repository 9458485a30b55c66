package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestEnvelopeTrimWhitespace() {
	envelope := suite.createTestEnvelope(models.Envelope{
		OwnerID: uuid.New(),
		Name:    " Groceries\t",
		Note:    " Everything we eat ",
		Kind:    models.EnvelopeKindRegular,
	})

	assert.Equal(suite.T(), "Groceries", envelope.Name)
	assert.Equal(suite.T(), "Everything we eat", envelope.Note)
}

func (suite *TestSuiteStandard) TestEnvelopeNameEmpty() {
	err := models.DB.Create(&models.Envelope{
		OwnerID: uuid.New(),
		Name:    "  ",
		Kind:    models.EnvelopeKindRegular,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeNameEmpty)
}

func (suite *TestSuiteStandard) TestEnvelopeNameUniquePerOwner() {
	owner := uuid.New()
	_ = suite.createTestEnvelope(models.Envelope{OwnerID: owner, Name: "Groceries"})

	err := models.DB.Create(&models.Envelope{
		OwnerID: owner,
		Name:    "Groceries",
		Kind:    models.EnvelopeKindRegular,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeNameNotUnique)

	// A different owner can reuse the name
	_ = suite.createTestEnvelope(models.Envelope{OwnerID: uuid.New(), Name: "Groceries"})
}

func (suite *TestSuiteStandard) TestEnvelopeKindInvalid() {
	err := models.DB.Create(&models.Envelope{
		OwnerID: uuid.New(),
		Name:    "Broken",
		Kind:    "checking",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeKindInvalid)
}

func (suite *TestSuiteStandard) TestEnvelopeRegularConfig() {
	rate := decimal.NewFromInt(5)

	err := models.DB.Create(&models.Envelope{
		OwnerID: uuid.New(),
		Name:    "Groceries",
		Kind:    models.EnvelopeKindRegular,
		Rate:    &rate,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeNoRate)
}

func (suite *TestSuiteStandard) TestEnvelopeSavingsRequiresTarget() {
	err := models.DB.Create(&models.Envelope{
		OwnerID: uuid.New(),
		Name:    "Vacation",
		Kind:    models.EnvelopeKindSavings,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeTargetRequired)
}

func (suite *TestSuiteStandard) TestEnvelopeDebtRequiresRate() {
	err := models.DB.Create(&models.Envelope{
		OwnerID: uuid.New(),
		Name:    "Credit Card",
		Kind:    models.EnvelopeKindDebt,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeRateRequired)
}

func (suite *TestSuiteStandard) TestEnvelopeDebtRateOutOfRange() {
	rate := decimal.NewFromInt(101)

	err := models.DB.Create(&models.Envelope{
		OwnerID: uuid.New(),
		Name:    "Credit Card",
		Kind:    models.EnvelopeKindDebt,
		Rate:    &rate,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeRateOutOfRange)
}

func (suite *TestSuiteStandard) TestEnvelopeBalanceInvariants() {
	regular := models.Envelope{Kind: models.EnvelopeKindRegular}
	assert.Nil(suite.T(), regular.CheckBalance(money.FromCents(100)))
	assert.ErrorIs(suite.T(), regular.CheckBalance(money.FromCents(-1)), models.ErrEnvelopeOverdrawn)

	savings := models.Envelope{Kind: models.EnvelopeKindSavings}
	assert.Nil(suite.T(), savings.CheckBalance(money.Zero))
	assert.ErrorIs(suite.T(), savings.CheckBalance(money.FromCents(-1)), models.ErrEnvelopeOverdrawn)

	debt := models.Envelope{Kind: models.EnvelopeKindDebt}
	assert.Nil(suite.T(), debt.CheckBalance(money.FromCents(-100)))
	assert.Nil(suite.T(), debt.CheckBalance(money.Zero))
	assert.ErrorIs(suite.T(), debt.CheckBalance(money.FromCents(1)), models.ErrEnvelopeDebtOverpaid)
}

func (suite *TestSuiteStandard) TestEnvelopeCreateOverdrawn() {
	err := models.DB.Create(&models.Envelope{
		OwnerID: uuid.New(),
		Name:    "Groceries",
		Kind:    models.EnvelopeKindRegular,
		Balance: money.FromCents(-100),
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeOverdrawn)
}

func (suite *TestSuiteStandard) TestEnvelopeDeleteNonEmpty() {
	envelope := suite.createTestEnvelope(models.Envelope{
		OwnerID: uuid.New(),
		Name:    "Groceries",
		Kind:    models.EnvelopeKindRegular,
		Balance: money.FromCents(100),
	})

	err := models.DB.Delete(&envelope).Error
	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeNotEmpty)
}

func (suite *TestSuiteStandard) TestEnvelopeDeleteEmpty() {
	envelope := suite.createTestEnvelope(models.Envelope{
		OwnerID: uuid.New(),
		Name:    "Groceries",
		Kind:    models.EnvelopeKindRegular,
	})

	require.Nil(suite.T(), models.DB.Delete(&envelope).Error)

	err := models.DB.First(&models.Envelope{}, "id = ?", envelope.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestEnvelopeCategoryIntegrity() {
	category := uuid.New()

	err := models.DB.Create(&models.Envelope{
		OwnerID:    uuid.New(),
		CategoryID: &category,
		Name:       "Groceries",
		Kind:       models.EnvelopeKindRegular,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
