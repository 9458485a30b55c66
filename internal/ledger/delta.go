package ledger

import (
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
)

// role is the part an envelope plays in a transaction.
type role int

const (
	roleExpense role = iota
	roleTransferSource
	roleTransferDestination
	roleAllocation
)

// deltaFor returns the signed balance change for an envelope of the
// given kind in the given role.
//
// This is the single place encoding the sign asymmetry of debt
// envelopes: their balance is the negated amount owed, so spending
// computes to the same delta as on other kinds, while moving money out
// of them (a payoff) moves the balance up, toward zero.
func deltaFor(kind models.EnvelopeKind, r role, amount money.Money) money.Money {
	switch r {
	case roleExpense:
		return amount.Neg()

	case roleTransferSource:
		if kind == models.EnvelopeKindDebt {
			return amount
		}

		return amount.Neg()

	case roleTransferDestination, roleAllocation:
		return amount
	}

	// Unreachable, the roles are package private.
	return money.Zero
}
