// Package ledger implements the envelope ledger engine.
//
// All balance mutations go through the engine: one operation per
// transaction kind plus reversal. Every operation validates against the
// envelope invariants, applies its balance deltas and appends the
// transaction record atomically, or fails without any partial effect.
//
// Operations on the same envelope serialize through a lock registry,
// so a balance check is never made against a stale read. The read-only
// projections (internal/projection) take no locks.
package ledger

import (
	"time"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Engine applies transactions to envelopes.
type Engine struct {
	db    *gorm.DB
	locks *lockRegistry
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock the engine uses for date defaults.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New returns an Engine operating on the given database.
func New(db *gorm.DB, options ...Option) *Engine {
	e := &Engine{
		db:    db,
		locks: newLockRegistry(),
		now: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// RecordIncome appends an income transaction.
//
// Income does not change any envelope balance. It increases the derived
// available funds pool, see AvailableFunds.
func (e *Engine) RecordIncome(owner, incomeSource uuid.UUID, amount money.Money, description string, occurredOn time.Time) (uuid.UUID, error) {
	transaction := models.Transaction{
		OwnerID:        owner,
		Kind:           models.TransactionKindIncome,
		Amount:         amount,
		Description:    description,
		OccurredOn:     e.defaultDate(occurredOn),
		IncomeSourceID: &incomeSource,
	}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		var source models.IncomeSource
		err := tx.First(&source, "id = ? AND owner_id = ?", incomeSource, owner).Error
		if err != nil {
			return err
		}

		return tx.Create(&transaction).Error
	})
	if err != nil {
		return uuid.Nil, err
	}

	return transaction.ID, nil
}

// RecordExpense spends money from an envelope.
//
// Regular and savings envelopes must hold the full amount. On debt
// envelopes the expense deepens the debt, the stored balance is negative
// so the delta is the same.
func (e *Engine) RecordExpense(owner, envelope uuid.UUID, amount money.Money, description, payee string, occurredOn time.Time) (uuid.UUID, error) {
	unlock := e.locks.lock(envelope)
	defer unlock()

	transaction := models.Transaction{
		OwnerID:     owner,
		Kind:        models.TransactionKindExpense,
		Amount:      amount,
		Description: description,
		Payee:       payee,
		OccurredOn:  e.defaultDate(occurredOn),
		EnvelopeID:  &envelope,
	}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		target, err := ownedEnvelope(tx, owner, envelope)
		if err != nil {
			return err
		}

		err = checkFunds(target, amount)
		if err != nil {
			return err
		}

		err = applyDelta(tx, &target, deltaFor(target.Kind, roleExpense, amount))
		if err != nil {
			return err
		}

		return tx.Create(&transaction).Error
	})
	if err != nil {
		return uuid.Nil, err
	}

	return transaction.ID, nil
}

// RecordTransfer moves money between two distinct envelopes.
//
// Moving money out of a debt envelope is a payoff, so the source delta
// is positive there and negative everywhere else. The destination
// always receives the amount.
func (e *Engine) RecordTransfer(owner, source, destination uuid.UUID, amount money.Money, description string, occurredOn time.Time) (uuid.UUID, error) {
	if source == destination {
		return uuid.Nil, models.ErrSourceDoesNotEqualDestination
	}

	unlock := e.locks.lock(source, destination)
	defer unlock()

	transaction := models.Transaction{
		OwnerID:               owner,
		Kind:                  models.TransactionKindTransfer,
		Amount:                amount,
		Description:           description,
		OccurredOn:            e.defaultDate(occurredOn),
		SourceEnvelopeID:      &source,
		DestinationEnvelopeID: &destination,
	}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		from, err := ownedEnvelope(tx, owner, source)
		if err != nil {
			return err
		}

		to, err := ownedEnvelope(tx, owner, destination)
		if err != nil {
			return err
		}

		err = checkFunds(from, amount)
		if err != nil {
			return err
		}

		err = applyDelta(tx, &from, deltaFor(from.Kind, roleTransferSource, amount))
		if err != nil {
			return err
		}

		err = applyDelta(tx, &to, deltaFor(to.Kind, roleTransferDestination, amount))
		if err != nil {
			return err
		}

		return tx.Create(&transaction).Error
	})
	if err != nil {
		return uuid.Nil, err
	}

	return transaction.ID, nil
}

// RecordAllocation assigns money from the available funds pool to an
// envelope. On debt envelopes this reduces the amount owed.
func (e *Engine) RecordAllocation(owner, envelope uuid.UUID, amount money.Money, description string, occurredOn time.Time) (uuid.UUID, error) {
	unlock := e.locks.lock(envelope)
	defer unlock()

	transaction := models.Transaction{
		OwnerID:     owner,
		Kind:        models.TransactionKindAllocation,
		Amount:      amount,
		Description: description,
		OccurredOn:  e.defaultDate(occurredOn),
		EnvelopeID:  &envelope,
	}

	err := e.db.Transaction(func(tx *gorm.DB) error {
		target, err := ownedEnvelope(tx, owner, envelope)
		if err != nil {
			return err
		}

		err = applyDelta(tx, &target, deltaFor(target.Kind, roleAllocation, amount))
		if err != nil {
			return err
		}

		return tx.Create(&transaction).Error
	})
	if err != nil {
		return uuid.Nil, err
	}

	return transaction.ID, nil
}

// Reverse undoes a committed transaction.
//
// The exact inverse delta set is applied to every envelope the
// transaction touched, then the record is tombstoned. Transactions of
// other owners are reported as not found.
func (e *Engine) Reverse(transactionID, owner uuid.UUID) error {
	var transaction models.Transaction
	err := e.db.First(&transaction, "id = ? AND owner_id = ?", transactionID, owner).Error
	if err != nil {
		return err
	}

	unlock := e.locks.lock(transactionEnvelopes(transaction)...)
	defer unlock()

	return e.db.Transaction(func(tx *gorm.DB) error {
		// Re-read under the lock so a concurrent reversal of the same
		// transaction cannot apply the inverse twice.
		err := tx.First(&transaction, "id = ? AND owner_id = ?", transactionID, owner).Error
		if err != nil {
			return err
		}

		switch transaction.Kind {
		case models.TransactionKindIncome:
			// No envelope balance effect, consistent with RecordIncome.

		case models.TransactionKindExpense:
			err = reverseDelta(tx, owner, *transaction.EnvelopeID, roleExpense, transaction.Amount)
			if err != nil {
				return err
			}

		case models.TransactionKindTransfer:
			err = reverseDelta(tx, owner, *transaction.SourceEnvelopeID, roleTransferSource, transaction.Amount)
			if err != nil {
				return err
			}

			err = reverseDelta(tx, owner, *transaction.DestinationEnvelopeID, roleTransferDestination, transaction.Amount)
			if err != nil {
				return err
			}

		case models.TransactionKindAllocation:
			err = reverseDelta(tx, owner, *transaction.EnvelopeID, roleAllocation, transaction.Amount)
			if err != nil {
				return err
			}

		default:
			return models.ErrTransactionKindInvalid
		}

		return tx.Delete(&transaction).Error
	})
}

// DeleteEnvelope removes an empty envelope.
//
// The guard that the envelope holds no money runs under the envelope's
// lock against a fresh read, so money arriving concurrently cannot be
// deleted with the envelope.
func (e *Engine) DeleteEnvelope(owner, envelope uuid.UUID) error {
	unlock := e.locks.lock(envelope)
	defer unlock()

	return e.db.Transaction(func(tx *gorm.DB) error {
		target, err := ownedEnvelope(tx, owner, envelope)
		if err != nil {
			return err
		}

		return tx.Delete(&target).Error
	})
}

// reverseDelta applies the inverse of the delta the original
// transaction applied to the envelope.
func reverseDelta(tx *gorm.DB, owner, envelope uuid.UUID, r role, amount money.Money) error {
	target, err := ownedEnvelope(tx, owner, envelope)
	if err != nil {
		return err
	}

	return applyDelta(tx, &target, deltaFor(target.Kind, r, amount).Neg())
}

// applyDelta computes the prospective balance, re-checks the kind
// specific invariant and only then commits the new balance. It never
// partially applies.
func applyDelta(tx *gorm.DB, envelope *models.Envelope, delta money.Money) error {
	balance := envelope.Balance.Add(delta)

	err := envelope.CheckBalance(balance)
	if err != nil {
		return err
	}

	envelope.Balance = balance
	return tx.Save(envelope).Error
}

// checkFunds verifies that an envelope holds enough money to release
// the amount. Debt envelopes have no funds to check, spending on them
// borrows more.
func checkFunds(envelope models.Envelope, amount money.Money) error {
	if envelope.Kind == models.EnvelopeKindDebt {
		return nil
	}

	if envelope.Balance.LessThan(amount) {
		return InsufficientFundsError{
			EnvelopeID: envelope.ID,
			Available:  envelope.Balance,
			Required:   amount,
		}
	}

	return nil
}

// ownedEnvelope loads an envelope scoped to its owner.
func ownedEnvelope(tx *gorm.DB, owner, id uuid.UUID) (models.Envelope, error) {
	var envelope models.Envelope
	err := tx.First(&envelope, "id = ? AND owner_id = ?", id, owner).Error
	return envelope, err
}

// transactionEnvelopes returns the ids of all envelopes a transaction
// touches.
func transactionEnvelopes(t models.Transaction) []uuid.UUID {
	var ids []uuid.UUID

	if t.EnvelopeID != nil {
		ids = append(ids, *t.EnvelopeID)
	}

	if t.SourceEnvelopeID != nil {
		ids = append(ids, *t.SourceEnvelopeID)
	}

	if t.DestinationEnvelopeID != nil {
		ids = append(ids, *t.DestinationEnvelopeID)
	}

	return ids
}

func (e *Engine) defaultDate(occurredOn time.Time) time.Time {
	if occurredOn.IsZero() {
		return e.now()
	}

	return occurredOn.In(time.UTC)
}
