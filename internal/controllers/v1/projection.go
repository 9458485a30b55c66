package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/money"
	"github.com/centsible/backend/internal/projection"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PayoffResponse struct {
	Data projection.Payoff `json:"data"`
}

type ScheduleResponse struct {
	Data []projection.ScheduleRow `json:"data"`
}

type StrategyListResponse struct {
	Data []projection.Strategy `json:"data"`
}

type ProgressResponse struct {
	Data projection.Progress `json:"data"`
}

type MilestoneListResponse struct {
	Data []projection.Milestone `json:"data"`
}

// WhatIfEditable represents the candidate contributions for a goal
// what-if projection.
type WhatIfEditable struct {
	Contributions []money.Money `json:"contributions"`
}

type ScenarioListResponse struct {
	Data []projection.Scenario `json:"data"`
}

// registerProjectionRoutes registers the projection routes below an
// envelope resource.
func registerProjectionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id/debt/projection", httputil.OptionsGet)
	r.GET("/:id/debt/projection", GetDebtProjection)

	r.OPTIONS("/:id/debt/schedule", httputil.OptionsGet)
	r.GET("/:id/debt/schedule", GetDebtSchedule)

	r.OPTIONS("/:id/debt/strategies", httputil.OptionsGet)
	r.GET("/:id/debt/strategies", GetDebtStrategies)

	r.OPTIONS("/:id/goal/progress", httputil.OptionsGet)
	r.GET("/:id/goal/progress", GetGoalProgress)

	r.OPTIONS("/:id/goal/milestones", httputil.OptionsGet)
	r.GET("/:id/goal/milestones", GetGoalMilestones)

	r.OPTIONS("/:id/goal/what-if", httputil.OptionsPost)
	r.POST("/:id/goal/what-if", GetGoalWhatIf)
}

// @Summary		Debt payoff projection
// @Description	Projects when the debt is paid off with a fixed monthly payment
// @Tags			Projections
// @Produce		json
// @Success		200		{object}	PayoffResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			owner	query		string	true	"Owner of the envelope"
// @Param			payment	query		string	false	"Monthly payment, defaults to the envelope's minimum payment"
// @Router			/v1/envelopes/{id}/debt/projection [get]
func GetDebtProjection(c *gin.Context) {
	owed, rate, payment, err := debtFromRequest(c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	payoff, err := projection.PayoffProjection(owed, rate, payment, types.MonthOf(time.Now().UTC()))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, PayoffResponse{Data: payoff})
}

// @Summary		Debt amortization schedule
// @Description	Returns the month by month amortization schedule for the debt
// @Tags			Projections
// @Produce		json
// @Success		200		{object}	ScheduleResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			owner	query		string	true	"Owner of the envelope"
// @Param			payment	query		string	false	"Monthly payment, defaults to the envelope's minimum payment"
// @Param			months	query		int		false	"Number of months to project, defaults to 12"
// @Router			/v1/envelopes/{id}/debt/schedule [get]
func GetDebtSchedule(c *gin.Context) {
	owed, rate, payment, err := debtFromRequest(c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	months := 12
	if raw, ok := c.GetQuery("months"); ok {
		months, err = strconv.Atoi(raw)
		if err != nil || months <= 0 {
			c.JSON(http.StatusBadRequest, httpError{projection.ErrTargetMonthsInvalid.Error()})
			return
		}
	}

	rows, err := projection.AmortizationSchedule(owed, rate, payment, months, types.MonthOf(time.Now().UTC()))
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, ScheduleResponse{Data: rows})
}

// @Summary		Debt payoff strategies
// @Description	Compares a set of payoff strategies for the debt, cheapest in total interest first
// @Tags			Projections
// @Produce		json
// @Success		200		{object}	StrategyListResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			owner	query		string	true	"Owner of the envelope"
// @Router			/v1/envelopes/{id}/debt/strategies [get]
func GetDebtStrategies(c *gin.Context) {
	owed, rate, payment, err := debtFromRequest(c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	strategies := projection.CompareStrategies(owed, rate, payment, types.MonthOf(time.Now().UTC()))
	c.JSON(http.StatusOK, StrategyListResponse{Data: strategies})
}

// @Summary		Goal progress
// @Description	Returns the progress towards the savings goal of the envelope
// @Tags			Projections
// @Produce		json
// @Success		200		{object}	ProgressResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			owner	query		string	true	"Owner of the envelope"
// @Router			/v1/envelopes/{id}/goal/progress [get]
func GetGoalProgress(c *gin.Context) {
	envelope, err := savingsEnvelopeFromRequest(c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	progress := goalProgress(envelope)
	c.JSON(http.StatusOK, ProgressResponse{Data: progress})
}

// @Summary		Goal milestones
// @Description	Returns the milestones the savings goal has crossed
// @Tags			Projections
// @Produce		json
// @Success		200		{object}	MilestoneListResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			owner	query		string	true	"Owner of the envelope"
// @Router			/v1/envelopes/{id}/goal/milestones [get]
func GetGoalMilestones(c *gin.Context) {
	envelope, err := savingsEnvelopeFromRequest(c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	milestones := projection.Milestones(goalProgress(envelope))
	c.JSON(http.StatusOK, MilestoneListResponse{Data: milestones})
}

// @Summary		Goal what-if
// @Description	Projects candidate monthly contributions towards the savings goal
// @Tags			Projections
// @Produce		json
// @Success		200		{object}	ScenarioListResponse
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string			true	"ID formatted as string"
// @Param			owner	query		string			true	"Owner of the envelope"
// @Param			whatIf	body		WhatIfEditable	true	"Candidate contributions"
// @Router			/v1/envelopes/{id}/goal/what-if [post]
func GetGoalWhatIf(c *gin.Context) {
	envelope, err := savingsEnvelopeFromRequest(c)
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	var editable WhatIfEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	scenarios := projection.WhatIf(envelope.Balance, *envelope.TargetAmount, envelope.TargetDate, editable.Contributions, time.Now().UTC())
	c.JSON(http.StatusOK, ScenarioListResponse{Data: scenarios})
}

// debtFromRequest loads a debt envelope and returns the positive amount
// owed, the rate and the monthly payment. The payment query parameter
// overrides the envelope's minimum payment.
func debtFromRequest(c *gin.Context) (money.Money, decimal.Decimal, money.Money, error) {
	envelope, err := envelopeFromRequest(c)
	if err != nil {
		return money.Zero, decimal.Zero, money.Zero, err
	}

	if envelope.Kind != models.EnvelopeKindDebt {
		return money.Zero, decimal.Zero, money.Zero, errNotDebtEnvelope
	}

	var payment money.Money
	if raw, ok := c.GetQuery("payment"); ok {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			return money.Zero, decimal.Zero, money.Zero, httputil.ErrInvalidBody
		}

		payment = money.FromDecimal(parsed)
	} else if envelope.MinimumPayment != nil {
		payment = *envelope.MinimumPayment
	} else {
		return money.Zero, decimal.Zero, money.Zero, errMinimumPaymentNotSet
	}

	return envelope.Balance.Neg(), *envelope.Rate, payment, nil
}

// savingsEnvelopeFromRequest loads a savings envelope for a goal
// projection.
func savingsEnvelopeFromRequest(c *gin.Context) (models.Envelope, error) {
	envelope, err := envelopeFromRequest(c)
	if err != nil {
		return models.Envelope{}, err
	}

	if envelope.Kind != models.EnvelopeKindSavings {
		return models.Envelope{}, errNotSavingsEnvelope
	}

	return envelope, nil
}

// goalProgress computes the goal progress of a savings envelope, with
// its creation time anchoring the time progress.
func goalProgress(envelope models.Envelope) projection.Progress {
	return projection.GoalProgress(envelope.Balance, *envelope.TargetAmount, envelope.CreatedAt, envelope.TargetDate, time.Now().UTC())
}
