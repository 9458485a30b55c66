package ledger

import (
	"fmt"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/google/uuid"
)

// InsufficientFundsError is returned when a regular or savings envelope
// does not hold the amount an operation wants to release. It carries
// the available and the required amount for the caller.
type InsufficientFundsError struct {
	EnvelopeID uuid.UUID
	Available  money.Money
	Required   money.Money
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: envelope %s holds %s, %s required", e.EnvelopeID, e.Available, e.Required)
}

// Unwrap makes the error match the envelope invariant it specializes.
func (e InsufficientFundsError) Unwrap() error {
	return models.ErrEnvelopeOverdrawn
}
