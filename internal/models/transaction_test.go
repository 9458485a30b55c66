package models_test

import (
	"testing"
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionAmountNotPositive() {
	source := suite.createTestIncomeSource(models.IncomeSource{OwnerID: uuid.New()})

	err := models.DB.Create(&models.Transaction{
		OwnerID:        source.OwnerID,
		Kind:           models.TransactionKindIncome,
		Amount:         money.Zero,
		Description:    "Salary",
		IncomeSourceID: &source.ID,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)
}

func (suite *TestSuiteStandard) TestTransactionDescriptionEmpty() {
	source := suite.createTestIncomeSource(models.IncomeSource{OwnerID: uuid.New()})

	err := models.DB.Create(&models.Transaction{
		OwnerID:        source.OwnerID,
		Kind:           models.TransactionKindIncome,
		Amount:         money.FromCents(100),
		Description:    "   ",
		IncomeSourceID: &source.ID,
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrDescriptionEmpty)
}

func (suite *TestSuiteStandard) TestTransactionKindInvalid() {
	err := models.DB.Create(&models.Transaction{
		OwnerID:     uuid.New(),
		Kind:        "withdrawal",
		Amount:      money.FromCents(100),
		Description: "Invalid",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrTransactionKindInvalid)
}

func (suite *TestSuiteStandard) TestTransactionReferenceShapes() {
	owner := uuid.New()
	source := suite.createTestIncomeSource(models.IncomeSource{OwnerID: owner})
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: owner})
	other := suite.createTestEnvelope(models.Envelope{OwnerID: owner})

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{
			"income without source",
			models.Transaction{Kind: models.TransactionKindIncome},
			models.ErrTransactionReferencesInvalid,
		},
		{
			"income with envelope",
			models.Transaction{Kind: models.TransactionKindIncome, IncomeSourceID: &source.ID, EnvelopeID: &envelope.ID},
			models.ErrTransactionReferencesInvalid,
		},
		{
			"expense without envelope",
			models.Transaction{Kind: models.TransactionKindExpense},
			models.ErrTransactionReferencesInvalid,
		},
		{
			"expense with income source",
			models.Transaction{Kind: models.TransactionKindExpense, EnvelopeID: &envelope.ID, IncomeSourceID: &source.ID},
			models.ErrTransactionReferencesInvalid,
		},
		{
			"transfer missing destination",
			models.Transaction{Kind: models.TransactionKindTransfer, SourceEnvelopeID: &envelope.ID},
			models.ErrTransactionReferencesInvalid,
		},
		{
			"transfer with payee",
			models.Transaction{Kind: models.TransactionKindTransfer, SourceEnvelopeID: &envelope.ID, DestinationEnvelopeID: &other.ID, Payee: "Someone"},
			models.ErrTransactionReferencesInvalid,
		},
		{
			"transfer to itself",
			models.Transaction{Kind: models.TransactionKindTransfer, SourceEnvelopeID: &envelope.ID, DestinationEnvelopeID: &envelope.ID},
			models.ErrSourceDoesNotEqualDestination,
		},
		{
			"allocation with payee",
			models.Transaction{Kind: models.TransactionKindAllocation, EnvelopeID: &envelope.ID, Payee: "Someone"},
			models.ErrTransactionReferencesInvalid,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := tt.transaction
			transaction.OwnerID = owner
			transaction.Amount = money.FromCents(100)
			transaction.Description = "Shape check"

			err := models.DB.Create(&transaction).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionDefaultsDate() {
	owner := uuid.New()
	source := suite.createTestIncomeSource(models.IncomeSource{OwnerID: owner})

	transaction := suite.createTestTransaction(models.Transaction{
		OwnerID:        owner,
		Kind:           models.TransactionKindIncome,
		Amount:         money.FromCents(100),
		Description:    "Salary",
		IncomeSourceID: &source.ID,
	})

	assert.False(suite.T(), transaction.OccurredOn.IsZero())
	assert.Equal(suite.T(), time.UTC, transaction.OccurredOn.Location())
}

func (suite *TestSuiteStandard) TestTransactionPayeeOnExpense() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: owner, Balance: money.FromCents(10000)})

	transaction := suite.createTestTransaction(models.Transaction{
		OwnerID:     owner,
		Kind:        models.TransactionKindExpense,
		Amount:      money.FromCents(1732),
		Description: "Weekly groceries",
		Payee:       " Morning Dew Grocers ",
		EnvelopeID:  &envelope.ID,
	})

	assert.Equal(suite.T(), "Morning Dew Grocers", transaction.Payee)
}
