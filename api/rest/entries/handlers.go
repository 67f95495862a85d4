package entries

import (
	"net/http"

	"codeberg.org/moneyapi/server/api/rest/pagination"
	"codeberg.org/moneyapi/server/internal/errors"
	"codeberg.org/moneyapi/server/moneyapi/entries"
	"github.com/gin-gonic/gin"
)

// ListEntriesHandler godoc
// @Summary List entries
// @Tags entries
// @Produce json
// @Param limit query int false "Page size (1-100)"
// @Param offset query int false "Offset"
// @Success 200 {object} EntriesListResponse
// @Failure 400 {array} errors.ErrorEntry
// @Router /api/v1/entries [get]
func ListEntriesHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, err := pagination.FromQuery(c, defaultPageSize, maxPageSize)
		if err != nil {
			_ = c.Error(err)
			return
		}

		list, err := repo.List(c.Request.Context(), params.Limit, params.Offset)
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, newListResponse(list, params))
	}
}

// GetEntryHandler godoc
// @Summary Get an entry
// @Tags entries
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} entries.Entry
// @Failure 404 {array} errors.ErrorEntry
// @Router /api/v1/entries/{id} [get]
func GetEntryHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := errors.PathID(c, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}

		entry, err := repo.Get(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, entry)
	}
}

// CreateEntryHandler godoc
// @Summary Book an entry
// @Description The person must exist and be active
// @Tags entries
// @Accept json
// @Produce json
// @Param request body entries.EntryRequest true "Entry data"
// @Success 201 {object} entries.Entry
// @Failure 400 {array} errors.ErrorEntry
// @Router /api/v1/entries [post]
// @Security BearerAuth
func CreateEntryHandler(creator Creator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req entries.EntryRequest
		if err := errors.Bind(c, &req); err != nil {
			_ = c.Error(err)
			return
		}

		entry, err := creator.Create(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusCreated, entry)
	}
}

// DeleteEntryHandler godoc
// @Summary Delete an entry
// @Tags entries
// @Param id path int true "Entry ID"
// @Success 204
// @Failure 404 {array} errors.ErrorEntry
// @Router /api/v1/entries/{id} [delete]
// @Security BearerAuth
func DeleteEntryHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := errors.PathID(c, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}

		if err := repo.Delete(c.Request.Context(), id); err != nil {
			_ = c.Error(err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
