package categories

import (
	"net/http"

	"codeberg.org/moneyapi/server/internal/errors"
	"codeberg.org/moneyapi/server/moneyapi/categories"
	"github.com/gin-gonic/gin"
)

// ListCategoriesHandler lists all categories
func ListCategoriesHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := repo.List(c.Request.Context())
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// GetCategoryHandler gets a single category by ID
func GetCategoryHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := errors.PathID(c, "id")
		if err != nil {
			_ = c.Error(err)
			return
		}

		category, err := repo.Get(c.Request.Context(), id)
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

// CreateCategoryHandler creates a category; duplicate names are rejected by the database
func CreateCategoryHandler(repo Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categories.CategoryRequest
		if err := errors.Bind(c, &req); err != nil {
			_ = c.Error(err)
			return
		}

		category, err := repo.Create(c.Request.Context(), req)
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusCreated, category)
	}
}

// DeleteCategoryHandler deletes a category that no entry references
func DeleteCategoryHandler(repo Repository) gin.HandlerFunc {
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
