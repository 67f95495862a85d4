package persons

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles person database operations
type Repository struct {
	db *pgxpool.Pool
}

type Person struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Address struct {
	Street     string `json:"street" binding:"omitempty,max=120"`
	Number     string `json:"number" binding:"omitempty,max=20"`
	Complement string `json:"complement" binding:"omitempty,max=60"`
	District   string `json:"district" binding:"omitempty,max=60"`
	ZipCode    string `json:"zip_code" binding:"omitempty,numeric,len=8"`
	City       string `json:"city" binding:"omitempty,max=60"`
	State      string `json:"state" binding:"omitempty,len=2,alpha"`
}

// payload for creating or replacing a person
type PersonRequest struct {
	Name    string  `json:"name" binding:"required,min=3,max=50"`
	Active  *bool   `json:"active" binding:"required"`
	Address Address `json:"address"`
}
