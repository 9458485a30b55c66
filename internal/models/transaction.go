package models

import (
	"strings"
	"time"

	"github.com/centsible/backend/internal/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionKind determines which envelope references a transaction
// carries and how its amount is applied.
type TransactionKind string

const (
	TransactionKindIncome     TransactionKind = "income"
	TransactionKindExpense    TransactionKind = "expense"
	TransactionKindTransfer   TransactionKind = "transfer"
	TransactionKindAllocation TransactionKind = "allocation"
)

// Transaction is one committed ledger operation.
//
// Transactions are immutable once committed. Fixing a mistake means
// reversing the transaction through the ledger, never editing history.
// The amount is always positive, the direction is encoded by the kind
// and the envelope roles.
type Transaction struct {
	DefaultModel
	OwnerID     uuid.UUID
	Kind        TransactionKind
	Amount      money.Money
	Description string
	Payee       string    // Only set for expenses
	OccurredOn  time.Time // Time of day is currently only used for sorting

	// Exactly one reference shape is set, depending on the kind.
	IncomeSourceID        *uuid.UUID   // Income
	IncomeSource          IncomeSource `json:"-"`
	EnvelopeID            *uuid.UUID   // Expense and allocation
	Envelope              Envelope     `json:"-"`
	SourceEnvelopeID      *uuid.UUID   // Transfer
	SourceEnvelope        Envelope     `json:"-"`
	DestinationEnvelopeID *uuid.UUID   `gorm:"check:source_destination_different,source_envelope_id != destination_envelope_id"` // Transfer
	DestinationEnvelope   Envelope     `json:"-"`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.OccurredOn = t.OccurredOn.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for OccurredOn to UTC and defaults it to now
//   - trims whitespace from string fields
//   - verifies amount, description and the reference shape
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)
	t.Payee = strings.TrimSpace(t.Payee)

	if t.OccurredOn.IsZero() {
		t.OccurredOn = time.Now().In(time.UTC)
	} else {
		t.OccurredOn = t.OccurredOn.In(time.UTC)
	}

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Description == "" {
		return ErrDescriptionEmpty
	}

	return t.checkReferences()
}

// checkReferences verifies that exactly the references for the
// transaction kind are set. Any other combination is invalid, mirroring
// the exclusive CHECK constraints of the schema.
func (t *Transaction) checkReferences() error {
	switch t.Kind {
	case TransactionKindIncome:
		if t.IncomeSourceID == nil || t.EnvelopeID != nil || t.SourceEnvelopeID != nil || t.DestinationEnvelopeID != nil || t.Payee != "" {
			return ErrTransactionReferencesInvalid
		}

	case TransactionKindExpense:
		if t.EnvelopeID == nil || t.IncomeSourceID != nil || t.SourceEnvelopeID != nil || t.DestinationEnvelopeID != nil {
			return ErrTransactionReferencesInvalid
		}

	case TransactionKindTransfer:
		if t.SourceEnvelopeID == nil || t.DestinationEnvelopeID == nil || t.IncomeSourceID != nil || t.EnvelopeID != nil || t.Payee != "" {
			return ErrTransactionReferencesInvalid
		}

		if *t.SourceEnvelopeID == *t.DestinationEnvelopeID {
			return ErrSourceDoesNotEqualDestination
		}

	case TransactionKindAllocation:
		if t.EnvelopeID == nil || t.IncomeSourceID != nil || t.SourceEnvelopeID != nil || t.DestinationEnvelopeID != nil || t.Payee != "" {
			return ErrTransactionReferencesInvalid
		}

	default:
		return ErrTransactionKindInvalid
	}

	return nil
}
