package entries

import (
	"context"

	"codeberg.org/moneyapi/server/moneyapi/entries"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// entry reads and deletes go straight to storage
type Repository interface {
	List(ctx context.Context, limit, offset int) ([]entries.Entry, error)
	Get(ctx context.Context, id int64) (*entries.Entry, error)
	Delete(ctx context.Context, id int64) error
}

// entry creation goes through the booking rules
type Creator interface {
	Create(ctx context.Context, req entries.EntryRequest) (*entries.Entry, error)
}

func RegisterRoutes(rg *gin.RouterGroup, repo Repository, creator Creator, authMiddleware gin.HandlerFunc) {
	group := rg.Group("/entries")

	group.GET("", ListEntriesHandler(repo))
	group.GET("/:id", GetEntryHandler(repo))
	group.POST("", authMiddleware, CreateEntryHandler(creator))
	group.DELETE("/:id", authMiddleware, DeleteEntryHandler(repo))
}
