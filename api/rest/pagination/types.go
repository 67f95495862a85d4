package pagination

import (
	"errors"

	apperrors "codeberg.org/moneyapi/server/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Params holds pagination parameters from request
type Params struct {
	Limit  int
	Offset int
}

// Query is the raw ?limit=&offset= pair as sent by the client
type Query struct {
	Limit  int `form:"limit" json:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" json:"offset" binding:"omitempty,min=0"`
}

// DefaultParams returns pagination params with defaults applied
// defaultLimit: default items per page, maxLimit: maximum allowed limit
func DefaultParams(limit, offset, defaultLimit, maxLimit int) Params {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Params{
		Limit:  limit,
		Offset: offset,
	}
}

// FromQuery reads and validates the pagination query parameters
func FromQuery(c *gin.Context, defaultLimit, maxLimit int) (Params, error) {
	var q Query

	if err := c.ShouldBindQuery(&q); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			return Params{}, err
		}

		return Params{}, apperrors.Malformed(err)
	}

	return DefaultParams(q.Limit, q.Offset, defaultLimit, maxLimit), nil
}
