package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Transaction validation
	ErrAmountNotPositive             = errors.New("transaction amounts must be larger than zero")
	ErrDescriptionEmpty              = errors.New("transactions must have a description")
	ErrTransactionKindInvalid        = errors.New("the transaction kind is invalid")
	ErrTransactionReferencesInvalid  = errors.New("the transaction references do not match its kind")
	ErrSourceDoesNotEqualDestination = errors.New("source and destination envelope of a transfer must be different")

	// Envelope invariants
	ErrEnvelopeKindInvalid        = errors.New("the envelope kind is invalid")
	ErrEnvelopeNameEmpty          = errors.New("envelopes must have a name")
	ErrEnvelopeNameNotUnique      = errors.New("the envelope name must be unique per owner")
	ErrEnvelopeNotEmpty           = errors.New("envelopes with a balance cannot be deleted, transfer the balance first")
	ErrEnvelopeNoRate             = errors.New("only debt envelopes can have an interest rate or minimum payment")
	ErrEnvelopeTargetRequired     = errors.New("savings envelopes must have a positive target amount")
	ErrEnvelopeRateRequired       = errors.New("debt envelopes must have an interest rate")
	ErrEnvelopeRateOutOfRange     = errors.New("interest rates must be between 0 and 100")
	ErrEnvelopeOverdrawn          = errors.New("this operation would overdraw the envelope")
	ErrEnvelopeDebtOverpaid       = errors.New("this operation would overpay the debt envelope")

	// Categories
	ErrCategoryNameEmpty     = errors.New("categories must have a name")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique per owner")

	// Income sources
	ErrIncomeSourceNameEmpty     = errors.New("income sources must have a name")
	ErrIncomeSourceNameNotUnique = errors.New("the income source name must be unique per owner")

	// Allocation rules
	ErrRuleAmountXorPercentage  = errors.New("allocation rules must set exactly one of amount and percentage")
	ErrRulePercentageOutOfRange = errors.New("allocation rule percentages must be between 1 and 100")
	ErrRuleAmountNotPositive    = errors.New("allocation rule amounts must be larger than zero")

	// Match rules
	ErrMatchRuleMatchEmpty = errors.New("match rules must have a match pattern")
)
