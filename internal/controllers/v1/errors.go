package v1

import (
	"errors"
	"net/http"

	"github.com/centsible/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Projection errors
var (
	errNotDebtEnvelope       = errors.New("debt projections are only available for debt envelopes")
	errNotSavingsEnvelope    = errors.New("goal projections are only available for savings envelopes")
	errMinimumPaymentNotSet  = errors.New("the envelope has no minimum payment and no payment was given")
	errOwnerParameterMissing = errors.New("the owner parameter must be set to a valid UUID")
)
