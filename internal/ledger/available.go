package ledger

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/google/uuid"
)

// AvailableFunds returns the sum of all positive envelope balances for
// the owner.
//
// The pool is always derived from the envelopes, there is no stored
// running total that could drift from the transaction history.
func (e *Engine) AvailableFunds(owner uuid.UUID) (money.Money, error) {
	var available money.Money

	err := e.db.Model(&models.Envelope{}).
		Where("owner_id = ? AND balance > 0", owner).
		Select("SUM(balance)").
		Row().
		Scan(&available)
	if err != nil {
		return money.Zero, fmt.Errorf("summing envelope balances for owner %s: %w", owner, err)
	}

	return available, nil
}
