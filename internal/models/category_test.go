package models_test

import (
	"github.com/centsible/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestCategoryTrimWhitespace() {
	category := suite.createTestCategory(models.Category{
		OwnerID: uuid.New(),
		Name:    " Fixed costs  ",
		Note:    " Rent and insurance ",
	})

	suite.Assert().Equal("Fixed costs", category.Name)
	suite.Assert().Equal("Rent and insurance", category.Note)
}

func (suite *TestSuiteStandard) TestCategoryNameEmpty() {
	err := models.DB.Create(&models.Category{OwnerID: uuid.New()}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameEmpty)
}

func (suite *TestSuiteStandard) TestCategoryNameUniquePerOwner() {
	owner := uuid.New()
	_ = suite.createTestCategory(models.Category{OwnerID: owner, Name: "Fixed costs"})

	err := models.DB.Create(&models.Category{OwnerID: owner, Name: "Fixed costs"}).Error
	suite.Assert().ErrorIs(err, models.ErrCategoryNameNotUnique)

	// The same name is fine for another owner
	_ = suite.createTestCategory(models.Category{OwnerID: uuid.New(), Name: "Fixed costs"})
}

func (suite *TestSuiteStandard) TestCategoryDeleteUncategorizesEnvelopes() {
	owner := uuid.New()
	category := suite.createTestCategory(models.Category{OwnerID: owner})
	envelope := suite.createTestEnvelope(models.Envelope{OwnerID: owner, CategoryID: &category.ID})

	err := models.DB.Delete(&category).Error
	suite.Require().Nil(err)

	err = models.DB.First(&envelope, envelope.ID).Error
	suite.Require().Nil(err)
	suite.Assert().Nil(envelope.CategoryID)
}
