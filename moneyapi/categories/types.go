package categories

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	db *pgxpool.Pool
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required,min=3,max=50"`
}
