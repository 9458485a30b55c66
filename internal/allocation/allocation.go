// Package allocation distributes income across envelopes according to
// the owner's allocation rules.
package allocation

import (
	"fmt"
	"time"

	"github.com/centsible/backend/internal/ledger"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Engine runs automatic allocations. All balance mutations go through
// the ledger engine, one allocation transaction per applied rule.
type Engine struct {
	db     *gorm.DB
	ledger *ledger.Engine
}

// New returns an allocation engine writing through the given ledger.
func New(db *gorm.DB, l *ledger.Engine) *Engine {
	return &Engine{
		db:     db,
		ledger: l,
	}
}

// Allocated is one applied allocation rule.
type Allocated struct {
	EnvelopeID    uuid.UUID   `json:"envelopeId"`
	Amount        money.Money `json:"amount"`
	TransactionID uuid.UUID   `json:"transactionId"`
}

// Run distributes an income amount across envelopes.
//
// All automatic rules matching the income source (or any source) are
// applied in priority order, higher priorities first, creation order as
// the tie break. Each rule allocates its fixed amount or its percentage
// of the income, clamped to what is still unallocated. The run stops
// early once everything is allocated; the total never exceeds the
// income amount. What no rule claims stays in the available funds pool.
func (e *Engine) Run(owner, incomeSource uuid.UUID, amount money.Money) ([]Allocated, error) {
	if !amount.IsPositive() {
		return nil, models.ErrAmountNotPositive
	}

	var rules []models.AllocationRule
	err := e.db.
		Where("owner_id = ? AND automatic = ? AND (income_source_id IS NULL OR income_source_id = ?)", owner, true, incomeSource).
		Order("priority DESC, created_at ASC").
		Find(&rules).Error
	if err != nil {
		return nil, fmt.Errorf("loading allocation rules: %w", err)
	}

	remaining := amount
	applied := make([]Allocated, 0, len(rules))

	for _, rule := range rules {
		if !remaining.IsPositive() {
			break
		}

		share := ruleAmount(rule, amount)
		share = money.Min(share, remaining)
		if !share.IsPositive() {
			continue
		}

		description := rule.Description
		if description == "" {
			description = "Automatic allocation"
		}

		id, err := e.ledger.RecordAllocation(owner, rule.EnvelopeID, share, description, time.Time{})
		if err != nil {
			// A rejected rule (e.g. one that would overpay a debt
			// envelope) does not abort the run, the remaining rules
			// still get their share.
			log.Warn().
				Err(err).
				Str("rule", rule.ID.String()).
				Str("envelope", rule.EnvelopeID.String()).
				Msg("allocation rule skipped")
			continue
		}

		remaining = remaining.Sub(share)
		applied = append(applied, Allocated{
			EnvelopeID:    rule.EnvelopeID,
			Amount:        share,
			TransactionID: id,
		})
	}

	return applied, nil
}

// ruleAmount computes the amount a rule claims from an income.
func ruleAmount(rule models.AllocationRule, income money.Money) money.Money {
	if rule.Percentage != nil {
		return income.Percent(*rule.Percentage)
	}

	return *rule.Amount
}

// BudgetStatus describes the percentage budget of an owner's rules.
type BudgetStatus string

const (
	BudgetStatusOverAllocated      BudgetStatus = "over-allocated"      // Percentages sum to more than 100
	BudgetStatusFullyAllocated     BudgetStatus = "fully-allocated"     // Percentages sum to exactly 100
	BudgetStatusPartiallyAllocated BudgetStatus = "partially-allocated" // The remainder stays unallocated
)

// PercentageBudget is the result of ValidatePercentageBudget.
type PercentageBudget struct {
	TotalPercentage decimal.Decimal `json:"totalPercentage"`
	Status          BudgetStatus    `json:"status"`
}

// ValidatePercentageBudget sums the percentages of all automatic
// percentage based rules in scope and reports whether they exceed 100.
//
// This is purely informational. An over-allocated budget never blocks a
// run, the clamping in Run keeps the total in bounds regardless.
func (e *Engine) ValidatePercentageBudget(owner uuid.UUID, incomeSource *uuid.UUID) (PercentageBudget, error) {
	q := e.db.Model(&models.AllocationRule{}).
		Where("owner_id = ? AND automatic = ? AND percentage IS NOT NULL", owner, true)

	if incomeSource != nil {
		q = q.Where("income_source_id IS NULL OR income_source_id = ?", incomeSource)
	}

	var total decimal.NullDecimal
	err := q.Select("SUM(percentage)").Row().Scan(&total)
	if err != nil {
		return PercentageBudget{}, fmt.Errorf("summing rule percentages for owner %s: %w", owner, err)
	}

	budget := PercentageBudget{TotalPercentage: total.Decimal}

	hundred := decimal.NewFromInt(100)
	switch {
	case budget.TotalPercentage.GreaterThan(hundred):
		budget.Status = BudgetStatusOverAllocated
	case budget.TotalPercentage.Equal(hundred):
		budget.Status = BudgetStatusFullyAllocated
	default:
		budget.Status = BudgetStatusPartiallyAllocated
	}

	return budget, nil
}
