package categories

import (
	"context"

	"codeberg.org/moneyapi/server/moneyapi/categories"
	"github.com/gin-gonic/gin"
)

type Repository interface {
	List(ctx context.Context) ([]categories.Category, error)
	Get(ctx context.Context, id int64) (*categories.Category, error)
	Create(ctx context.Context, req categories.CategoryRequest) (*categories.Category, error)
	Delete(ctx context.Context, id int64) error
}

func RegisterRoutes(rg *gin.RouterGroup, repo Repository, authMiddleware gin.HandlerFunc) {
	group := rg.Group("/categories")

	group.GET("", ListCategoriesHandler(repo))
	group.GET("/:id", GetCategoryHandler(repo))
	group.POST("", authMiddleware, CreateCategoryHandler(repo))
	group.DELETE("/:id", authMiddleware, DeleteCategoryHandler(repo))
}
