package models

import (
	"strings"
	"time"

	"github.com/centsible/backend/internal/money"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EnvelopeKind determines which invariants apply to an envelope.
type EnvelopeKind string

const (
	EnvelopeKindRegular EnvelopeKind = "regular"
	EnvelopeKindSavings EnvelopeKind = "savings"
	EnvelopeKindDebt    EnvelopeKind = "debt"
)

// Envelope represents an envelope in your budget.
//
// Debt envelopes store the amount owed as a negative balance, so all
// envelope balances can be summed without branching on the kind.
type Envelope struct {
	DefaultModel
	OwnerID        uuid.UUID `gorm:"uniqueIndex:envelope_owner_name"`
	CategoryID     *uuid.UUID
	Category       Category `json:"-"`
	Name           string   `gorm:"uniqueIndex:envelope_owner_name"`
	Kind           EnvelopeKind
	Balance        money.Money
	TargetAmount   *money.Money     // Savings envelopes: the amount to save up to
	TargetDate     *time.Time       // Savings envelopes: when the target should be reached
	Rate           *decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Debt envelopes: annual interest rate in percent
	MinimumPayment *money.Money     // Debt envelopes: the minimum monthly payment
	Note           string
	Archived       bool
}

// BeforeSave trims whitespace and verifies the kind specific
// configuration of the envelope.
func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Note = strings.TrimSpace(e.Note)

	if e.Name == "" {
		return ErrEnvelopeNameEmpty
	}

	switch e.Kind {
	case EnvelopeKindRegular:
		if e.Rate != nil || e.MinimumPayment != nil {
			return ErrEnvelopeNoRate
		}

	case EnvelopeKindSavings:
		if e.Rate != nil || e.MinimumPayment != nil {
			return ErrEnvelopeNoRate
		}

		if e.TargetAmount == nil || !e.TargetAmount.IsPositive() {
			return ErrEnvelopeTargetRequired
		}

	case EnvelopeKindDebt:
		if e.Rate == nil {
			return ErrEnvelopeRateRequired
		}

		if e.Rate.IsNegative() || e.Rate.GreaterThan(decimal.NewFromInt(100)) {
			return ErrEnvelopeRateOutOfRange
		}

	default:
		return ErrEnvelopeKindInvalid
	}

	return e.CheckBalance(e.Balance)
}

func (e *Envelope) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Envelope)
	return e.checkIntegrity(tx, *toSave)
}

// BeforeDelete refuses to delete envelopes that still hold money. The
// balance has to be moved elsewhere with an explicit transfer first.
func (e *Envelope) BeforeDelete(_ *gorm.DB) error {
	if !e.Balance.IsZero() {
		return ErrEnvelopeNotEmpty
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (e *Envelope) checkIntegrity(tx *gorm.DB, toSave Envelope) error {
	if toSave.CategoryID == nil {
		return nil
	}

	return tx.First(&Category{}, toSave.CategoryID).Error
}

// CheckBalance verifies that a prospective balance satisfies the kind
// specific invariant of the envelope.
//
// Regular and savings envelopes must never drop below zero. Debt
// envelopes must never rise above zero since the balance is the negated
// amount owed.
func (e Envelope) CheckBalance(balance money.Money) error {
	switch e.Kind {
	case EnvelopeKindRegular, EnvelopeKindSavings:
		if balance.IsNegative() {
			return ErrEnvelopeOverdrawn
		}

	case EnvelopeKindDebt:
		if balance.IsPositive() {
			return ErrEnvelopeDebtOverpaid
		}

	default:
		return ErrEnvelopeKindInvalid
	}

	return nil
}
