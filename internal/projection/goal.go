package projection

import (
	"time"

	"github.com/centsible/backend/internal/money"
	"github.com/centsible/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Progress describes how far along a savings goal is.
//
// The time based fields are only set when the goal has a target date.
// A goal without a positive target amount reports zero progress, there
// is nothing to divide by.
type Progress struct {
	Balance         money.Money     `json:"balance"`
	TargetAmount    money.Money     `json:"targetAmount"`
	RemainingAmount money.Money     `json:"remainingAmount"`
	Percentage      decimal.Decimal `json:"percentage"`

	TargetDate             *time.Time       `json:"targetDate,omitempty"`
	TimeProgressPercentage *decimal.Decimal `json:"timeProgressPercentage,omitempty"`
	DaysRemaining          *int             `json:"daysRemaining,omitempty"`
	DailyTarget            *money.Money     `json:"dailyTarget,omitempty"`
	WeeklyTarget           *money.Money     `json:"weeklyTarget,omitempty"`
	MonthlyTarget          *money.Money     `json:"monthlyTarget,omitempty"`
}

var hundred = decimal.NewFromInt(100)

// GoalProgress computes the progress of a savings goal.
//
// start is when the goal began, usually the envelope creation time. It
// anchors the time progress percentage.
func GoalProgress(balance, target money.Money, start time.Time, targetDate *time.Time, now time.Time) Progress {
	progress := Progress{
		Balance:      balance,
		TargetAmount: target,
		Percentage:   decimal.Zero,
	}

	if !target.IsPositive() {
		return progress
	}

	progress.RemainingAmount = target.Sub(balance)
	if progress.RemainingAmount.IsNegative() {
		progress.RemainingAmount = money.Zero
	}

	percentage := balance.Decimal().
		Div(target.Decimal()).
		Mul(hundred).
		Round(money.Places)
	if percentage.GreaterThan(hundred) {
		percentage = hundred
	}
	progress.Percentage = percentage

	if targetDate == nil {
		return progress
	}

	progress.TargetDate = targetDate

	if total := targetDate.Sub(start); total > 0 {
		timeProgress := decimal.NewFromInt(int64(now.Sub(start))).
			Div(decimal.NewFromInt(int64(total))).
			Mul(hundred).
			Round(money.Places)
		if timeProgress.GreaterThan(hundred) {
			timeProgress = hundred
		}
		if timeProgress.IsNegative() {
			timeProgress = decimal.Zero
		}
		progress.TimeProgressPercentage = &timeProgress
	}

	days := int(targetDate.Sub(now).Hours() / 24)
	if days < 0 {
		days = 0
	}
	progress.DaysRemaining = &days

	if days > 0 && progress.RemainingAmount.IsPositive() {
		remaining := progress.RemainingAmount.Decimal()
		daysDecimal := decimal.NewFromInt(int64(days))

		daily := money.FromDecimal(remaining.Div(daysDecimal))
		weekly := money.FromDecimal(remaining.Mul(decimal.NewFromInt(7)).Div(daysDecimal))
		monthly := money.FromDecimal(remaining.Mul(decimal.NewFromInt(30)).Div(daysDecimal))

		progress.DailyTarget = &daily
		progress.WeeklyTarget = &weekly
		progress.MonthlyTarget = &monthly
	}

	return progress
}

// Milestone is a progress threshold a goal has crossed.
type Milestone struct {
	Threshold int64       `json:"threshold"` // Percent of the target amount
	Amount    money.Money `json:"amount"`    // The balance at which the threshold is crossed
}

var milestoneThresholds = []int64{25, 50, 75, 100}

// Milestones returns all thresholds the goal has currently crossed.
//
// The projection is stateless and always reports the full current set,
// not a delta. Callers that notify on new milestones diff against the
// set they recorded last.
func Milestones(progress Progress) []Milestone {
	var crossed []Milestone

	for _, threshold := range milestoneThresholds {
		if progress.Percentage.GreaterThanOrEqual(decimal.NewFromInt(threshold)) {
			crossed = append(crossed, Milestone{
				Threshold: threshold,
				Amount:    progress.TargetAmount.Percent(decimal.NewFromInt(threshold)),
			})
		}
	}

	return crossed
}

// Scenario projects one candidate monthly contribution towards a goal.
type Scenario struct {
	Contribution money.Money `json:"contribution"`

	// How long until the target amount is reached with this
	// contribution. Nil means never within the projection cap.
	MonthsToTarget  *int         `json:"monthsToTarget"`
	CompletionMonth *types.Month `json:"completionMonth"`

	// Only set when the goal has a target date.
	MeetsTargetDate     *bool        `json:"meetsTargetDate,omitempty"`
	BalanceAtTargetDate *money.Money `json:"balanceAtTargetDate,omitempty"`
	SurplusAtTargetDate *money.Money `json:"surplusAtTargetDate,omitempty"` // Negative is a shortfall
}

// WhatIf projects each candidate monthly contribution forward, month by
// month with simple addition, until the target amount is reached or the
// projection cap is hit.
func WhatIf(balance, target money.Money, targetDate *time.Time, contributions []money.Money, now time.Time) []Scenario {
	scenarios := make([]Scenario, 0, len(contributions))

	for _, contribution := range contributions {
		scenario := Scenario{Contribution: contribution}

		projected := balance
		for months := 0; months <= maxProjectionMonths; months++ {
			if !projected.LessThan(target) {
				m := months
				completion := types.MonthOf(now).AddDate(0, m)
				scenario.MonthsToTarget = &m
				scenario.CompletionMonth = &completion
				break
			}

			if !contribution.IsPositive() {
				break
			}

			projected = projected.Add(contribution)
		}

		if targetDate != nil {
			monthsUntil := monthsBetween(now, *targetDate)
			atDate := balance.Add(money.FromCents(contribution.Cents() * int64(monthsUntil)))
			meets := !atDate.LessThan(target)
			surplus := atDate.Sub(target)

			scenario.MeetsTargetDate = &meets
			scenario.BalanceAtTargetDate = &atDate
			scenario.SurplusAtTargetDate = &surplus
		}

		scenarios = append(scenarios, scenario)
	}

	return scenarios
}

// monthsBetween counts the whole months from one time to a later one.
func monthsBetween(from, until time.Time) int {
	months := 0
	for t := from.AddDate(0, 1, 0); !t.After(until) && months < maxProjectionMonths; t = t.AddDate(0, 1, 0) {
		months++
	}

	return months
}
