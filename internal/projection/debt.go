// Package projection implements the read-only debt payoff and savings
// goal projections.
//
// All functions are pure: they never touch the database and take no
// locks, so they can run in parallel with ledger operations. Debt
// balances are passed as the positive amount owed, callers negate the
// stored envelope balance.
package projection

import (
	"errors"

	"github.com/centsible/backend/internal/money"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var (
	// ErrInfeasiblePayment is returned when a payment does not cover
	// the monthly interest, so the debt would never be paid off.
	ErrInfeasiblePayment = errors.New("the payment does not cover the monthly interest")

	// ErrPayoffNeverReached is returned when a payment covers the
	// interest but still does not clear the debt within the
	// projection cap.
	ErrPayoffNeverReached = errors.New("the debt is not paid off within the projection horizon")

	// ErrTargetMonthsInvalid is returned for a non-positive payoff horizon.
	ErrTargetMonthsInvalid = errors.New("the number of target months must be larger than zero")
)

// maxProjectionMonths caps all month-by-month projections. Beyond 100
// years we report "never" instead of looping.
const maxProjectionMonths = 1200

// ScheduleRow is one month of an amortization schedule.
type ScheduleRow struct {
	Number           int         `json:"number"` // Payment number, starting at 1
	Month            types.Month `json:"month"`
	Payment          money.Money `json:"payment"`
	Principal        money.Money `json:"principal"`
	Interest         money.Money `json:"interest"`
	RemainingBalance money.Money `json:"remainingBalance"`
}

// monthlyInterest is the interest accruing on a balance in one month at
// an annual rate in percent.
func monthlyInterest(balance money.Money, rate decimal.Decimal) money.Money {
	return money.FromDecimal(balance.Decimal().Mul(rate).Div(decimal.NewFromInt(1200)))
}

// AmortizationSchedule projects up to the given number of monthly
// payments on a debt.
//
// The schedule ends early once the balance reaches zero, the last
// payment shrinks to what is actually owed. A payment that does not
// cover the interest means the balance never decreases, so the schedule
// is rejected as infeasible instead of running forever.
func AmortizationSchedule(balance money.Money, rate decimal.Decimal, payment money.Money, periods int, from types.Month) ([]ScheduleRow, error) {
	if periods > maxProjectionMonths {
		periods = maxProjectionMonths
	}

	rows := make([]ScheduleRow, 0, periods)

	for number := 1; number <= periods && balance.IsPositive(); number++ {
		interest := monthlyInterest(balance, rate)
		if !payment.GreaterThan(interest) {
			return nil, ErrInfeasiblePayment
		}

		principal := payment.Sub(interest)
		if balance.LessThan(principal) {
			principal = balance
		}

		balance = balance.Sub(principal)
		rows = append(rows, ScheduleRow{
			Number:           number,
			Month:            from.AddDate(0, number),
			Payment:          principal.Add(interest),
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: balance,
		})
	}

	return rows, nil
}

// Payoff is the result of projecting a debt to zero.
type Payoff struct {
	Months        int         `json:"months"`
	TotalInterest money.Money `json:"totalInterest"`
	TotalPaid     money.Money `json:"totalPaid"`
	PayoffMonth   types.Month `json:"payoffMonth"`
}

// PayoffProjection runs the amortization to completion.
//
// Termination is guaranteed: an infeasible payment is rejected up
// front, and a feasible one repays at least one cent of principal per
// month, bounded additionally by the projection cap.
func PayoffProjection(balance money.Money, rate decimal.Decimal, payment money.Money, from types.Month) (Payoff, error) {
	rows, err := AmortizationSchedule(balance, rate, payment, maxProjectionMonths, from)
	if err != nil {
		return Payoff{}, err
	}

	if len(rows) > 0 && rows[len(rows)-1].RemainingBalance.IsPositive() {
		return Payoff{}, ErrPayoffNeverReached
	}

	payoff := Payoff{
		Months:      len(rows),
		PayoffMonth: from.AddDate(0, len(rows)),
	}

	for _, row := range rows {
		payoff.TotalInterest = payoff.TotalInterest.Add(row.Interest)
		payoff.TotalPaid = payoff.TotalPaid.Add(row.Payment)
	}

	return payoff, nil
}

// RequiredPayment solves for the fixed monthly payment that zeroes the
// balance in exactly the given number of months, using the annuity
// formula. With no interest this degrades to an even split.
func RequiredPayment(balance money.Money, rate decimal.Decimal, targetMonths int) (money.Money, error) {
	if targetMonths <= 0 {
		return money.Zero, ErrTargetMonthsInvalid
	}

	if rate.IsZero() {
		return balance.Div(int64(targetMonths)), nil
	}

	// payment = balance * i * (1+i)^n / ((1+i)^n - 1)
	monthlyRate := rate.Div(decimal.NewFromInt(1200))
	one := decimal.NewFromInt(1)
	factor := one.Add(monthlyRate).Pow(decimal.NewFromInt(int64(targetMonths)))

	payment := balance.Decimal().
		Mul(monthlyRate).
		Mul(factor).
		Div(factor.Sub(one))

	return money.FromDecimal(payment), nil
}

// Strategy is one named payoff strategy with its projection.
type Strategy struct {
	Name    string      `json:"name"`
	Payment money.Money `json:"payment"`
	Payoff  *Payoff     `json:"payoff"` // nil when the payment is infeasible
}

// CompareStrategies projects a fixed set of payoff strategies for a
// debt and sorts them by total interest, cheapest first. Infeasible
// strategies sort last.
func CompareStrategies(balance money.Money, rate decimal.Decimal, minimumPayment money.Money, from types.Month) []Strategy {
	type candidate struct {
		name    string
		payment money.Money
	}

	candidates := []candidate{
		{"minimum payment", minimumPayment},
		{"minimum + 50", minimumPayment.Add(money.FromCents(5000))},
		{"minimum + 100", minimumPayment.Add(money.FromCents(10000))},
	}

	if payment, err := RequiredPayment(balance, rate, 12); err == nil {
		candidates = append(candidates, candidate{"12 month payoff", payment})
	}

	strategies := make([]Strategy, 0, len(candidates))
	for _, c := range candidates {
		strategy := Strategy{
			Name:    c.name,
			Payment: c.payment,
		}

		if payoff, err := PayoffProjection(balance, rate, c.payment, from); err == nil {
			strategy.Payoff = &payoff
		}

		strategies = append(strategies, strategy)
	}

	slices.SortStableFunc(strategies, func(a, b Strategy) int {
		switch {
		case a.Payoff == nil && b.Payoff == nil:
			return 0
		case a.Payoff == nil:
			return 1
		case b.Payoff == nil:
			return -1
		default:
			return int(a.Payoff.TotalInterest.Cents() - b.Payoff.TotalInterest.Cents())
		}
	})

	return strategies
}
