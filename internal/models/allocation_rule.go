package models

import (
	"strings"

	"github.com/centsible/backend/internal/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AllocationRule describes how income is distributed to an envelope.
//
// A rule either allocates a fixed amount or a percentage of the income,
// never both. Rules with a higher priority run first.
type AllocationRule struct {
	DefaultModel
	OwnerID        uuid.UUID
	EnvelopeID     uuid.UUID
	Envelope       Envelope   `json:"-"`
	IncomeSourceID *uuid.UUID // nil means the rule applies to income from any source
	Amount         *money.Money
	Percentage     *decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Automatic      bool             // Automatic rules run after every matching income transaction
	Priority       uint
	Description    string
}

// BeforeSave verifies that exactly one of amount and percentage is set
// and that it is in range.
func (r *AllocationRule) BeforeSave(_ *gorm.DB) error {
	r.Description = strings.TrimSpace(r.Description)

	if (r.Amount == nil) == (r.Percentage == nil) {
		return ErrRuleAmountXorPercentage
	}

	if r.Amount != nil && !r.Amount.IsPositive() {
		return ErrRuleAmountNotPositive
	}

	if r.Percentage != nil && (r.Percentage.LessThan(decimal.NewFromInt(1)) || r.Percentage.GreaterThan(decimal.NewFromInt(100))) {
		return ErrRulePercentageOutOfRange
	}

	return nil
}

func (r *AllocationRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*AllocationRule)
	return r.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (r *AllocationRule) checkIntegrity(tx *gorm.DB, toSave AllocationRule) error {
	err := tx.First(&Envelope{}, toSave.EnvelopeID).Error
	if err != nil {
		return err
	}

	if toSave.IncomeSourceID != nil {
		return tx.First(&IncomeSource{}, toSave.IncomeSourceID).Error
	}

	return nil
}
