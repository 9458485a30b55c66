// Package v1 implements the v1 API.
package v1

import (
	"github.com/centsible/backend/internal/allocation"
	"github.com/centsible/backend/internal/ledger"
	ez_uuid "github.com/centsible/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// The engines all handlers write through. Set once in Register.
var (
	ledgerEngine     *ledger.Engine
	allocationEngine *allocation.Engine
)

// Register wires the engines and attaches all v1 routes to the group.
func Register(group *gin.RouterGroup, l *ledger.Engine, a *allocation.Engine) {
	ledgerEngine = l
	allocationEngine = a

	RegisterEnvelopeRoutes(group.Group("/envelopes"))
	RegisterTransactionRoutes(group.Group("/transactions"))
	RegisterAllocationRoutes(group.Group("/allocations"))
	RegisterAllocationRuleRoutes(group.Group("/allocation-rules"))
	RegisterIncomeSourceRoutes(group.Group("/income-sources"))
	RegisterMatchRuleRoutes(group.Group("/match-rules"))
	RegisterOwnerRoutes(group.Group("/owners"))
	RegisterExportRoutes(group.Group("/export"))
}

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// ownerParam parses the owner query parameter.
func ownerParam(c *gin.Context) (uuid.UUID, error) {
	owner, err := uuid.Parse(c.Query("owner"))
	if err != nil {
		return uuid.Nil, errOwnerParameterMissing
	}

	return owner, nil
}
