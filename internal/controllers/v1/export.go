package v1

import (
	"encoding/json"
	"net/http"
	"reflect"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type ExportResponse struct {
	Data map[string]json.RawMessage `json:"data"` // Keys are the resource names
}

// RegisterExportRoutes registers the routes for exports with the
// RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", Export)
}

// @Summary		Export
// @Description	Exports all resources, including soft-deleted ones, as JSON
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func Export(c *gin.Context) {
	resources := make(map[string]json.RawMessage, len(models.Registry))

	for _, model := range models.Registry {
		exported, err := model.Export()
		if err != nil {
			c.JSON(status(err), httpError{err.Error()})
			return
		}

		resources[reflect.TypeOf(model).Name()] = exported
	}

	c.JSON(http.StatusOK, ExportResponse{Data: resources})
}
