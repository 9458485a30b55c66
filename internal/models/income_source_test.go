package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestIncomeSourceNameEmpty() {
	err := models.DB.Create(&models.IncomeSource{
		OwnerID: uuid.New(),
		Name:    " ",
	}).Error

	assert.ErrorIs(suite.T(), err, models.ErrIncomeSourceNameEmpty)
}

func (suite *TestSuiteStandard) TestIncomeSourceNameUniquePerOwner() {
	owner := uuid.New()
	_ = suite.createTestIncomeSource(models.IncomeSource{OwnerID: owner, Name: "Salary"})

	err := models.DB.Create(&models.IncomeSource{
		OwnerID: owner,
		Name:    "Salary",
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrIncomeSourceNameNotUnique)

	_ = suite.createTestIncomeSource(models.IncomeSource{OwnerID: uuid.New(), Name: "Salary"})
}

func (suite *TestSuiteStandard) TestIncomeSourceQueryNotFound() {
	err := models.DB.First(&models.IncomeSource{}, "id = ?", uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Contains(suite.T(), err.Error(), "there is no income source matching your query")
}
