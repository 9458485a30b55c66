package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IncomeSourceEditable represents all values of an IncomeSource that
// can be set on creation.
type IncomeSourceEditable struct {
	OwnerID uuid.UUID `json:"ownerId"`
	Name    string    `json:"name" example:"ACME Corp salary"`
	Note    string    `json:"note" example:"Paid on the 25th"`
}

func (editable IncomeSourceEditable) model() models.IncomeSource {
	return models.IncomeSource{
		OwnerID: editable.OwnerID,
		Name:    editable.Name,
		Note:    editable.Note,
	}
}

type IncomeSourceResponse struct {
	Data models.IncomeSource `json:"data"`
}

type IncomeSourceListResponse struct {
	Data []models.IncomeSource `json:"data"`
}

// RegisterIncomeSourceRoutes registers the routes for income sources
// with the RouterGroup that is passed.
func RegisterIncomeSourceRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetIncomeSources)
	r.POST("", CreateIncomeSource)

	r.OPTIONS("/:id", httputil.OptionsDelete)
	r.DELETE("/:id", DeleteIncomeSource)
}

// @Summary		Create income source
// @Description	Creates a new income source
// @Tags			IncomeSources
// @Produce		json
// @Success		201		{object}	IncomeSourceResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			source	body		IncomeSourceEditable	true	"Income source"
// @Router			/v1/income-sources [post]
func CreateIncomeSource(c *gin.Context) {
	var editable IncomeSourceEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	source := editable.model()
	err = models.DB.Create(&source).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusCreated, IncomeSourceResponse{Data: source})
}

// @Summary		List income sources
// @Description	Returns a list of income sources
// @Tags			IncomeSources
// @Produce		json
// @Success		200		{object}	IncomeSourceListResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			owner	query		string	true	"Filter by owner"
// @Router			/v1/income-sources [get]
func GetIncomeSources(c *gin.Context) {
	owner, err := ownerParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var sources []models.IncomeSource
	err = models.DB.Where(&models.IncomeSource{OwnerID: owner}).Order("name ASC").Find(&sources).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.JSON(http.StatusOK, IncomeSourceListResponse{Data: sources})
}

// @Summary		Delete income source
// @Description	Deletes an income source
// @Tags			IncomeSources
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path		string	true	"ID formatted as string"
// @Param			owner	query		string	true	"Owner of the income source"
// @Router			/v1/income-sources/{id} [delete]
func DeleteIncomeSource(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{httputil.ErrInvalidUUID.Error()})
		return
	}

	owner, err := ownerParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{err.Error()})
		return
	}

	var source models.IncomeSource
	err = models.DB.First(&source, "id = ? AND owner_id = ?", uri.ID.UUID, owner).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	err = models.DB.Delete(&source).Error
	if err != nil {
		c.JSON(status(err), httpError{err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
