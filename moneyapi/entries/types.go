package entries

import (
	"context"
	"time"

	"codeberg.org/moneyapi/server/moneyapi/persons"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

type Repository struct {
	db *pgxpool.Pool
}

// an income or expense booked against a person and a category
type Entry struct {
	ID          int64      `json:"id"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"due_date"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	AmountCents int64      `json:"amount_cents"`
	Notes       string     `json:"notes,omitempty"`
	Type        string     `json:"type"`
	CategoryID  int64      `json:"category_id"`
	PersonID    int64      `json:"person_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

type EntryRequest struct {
	Description string     `json:"description" binding:"required,max=50"`
	DueDate     time.Time  `json:"due_date" binding:"required"`
	PaymentDate *time.Time `json:"payment_date"`
	AmountCents int64      `json:"amount_cents" binding:"required,gt=0"`
	Notes       string     `json:"notes" binding:"max=100"`
	Type        string     `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	CategoryID  int64      `json:"category_id" binding:"required,gt=0"`
	PersonID    int64      `json:"person_id" binding:"required,gt=0"`
}

// looks up the person an entry is booked against
type PersonFinder interface {
	Get(ctx context.Context, id int64) (*persons.Person, error)
}

// persists entries
type Store interface {
	Create(ctx context.Context, req EntryRequest) (*Entry, error)
}

// applies the booking rules before entries reach the store
type Service struct {
	store   Store
	persons PersonFinder
}
