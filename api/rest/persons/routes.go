package persons

import (
	"context"

	"codeberg.org/moneyapi/server/moneyapi/persons"
	"github.com/gin-gonic/gin"
)

// person storage used by the handlers
type Repository interface {
	List(ctx context.Context) ([]persons.Person, error)
	Get(ctx context.Context, id int64) (*persons.Person, error)
	Create(ctx context.Context, req persons.PersonRequest) (*persons.Person, error)
	Update(ctx context.Context, id int64, req persons.PersonRequest) (*persons.Person, error)
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) error
}

func RegisterRoutes(rg *gin.RouterGroup, repo Repository, authMiddleware gin.HandlerFunc) {
	group := rg.Group("/persons")

	group.GET("", ListPersonsHandler(repo))
	group.GET("/:id", GetPersonHandler(repo))

	write := group.Group("")
	write.Use(authMiddleware)
	{
		write.POST("", CreatePersonHandler(repo))
		write.PUT("/:id", UpdatePersonHandler(repo))
		write.PUT("/:id/active", SetActiveHandler(repo))
		write.DELETE("/:id", DeletePersonHandler(repo))
	}
}
