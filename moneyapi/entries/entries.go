package entries

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]Entry, error) {
	rows, err := r.db.Query(ctx, queryList, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	list := []Entry{}

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}

		list = append(list, *entry)
	}

	return list, rows.Err()
}

func (r *Repository) Get(ctx context.Context, id int64) (*Entry, error) {
	entry, err := scanEntry(r.db.QueryRow(ctx, queryGet, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get entry %d: %w", id, err)
	}

	return entry, nil
}

// an unknown category_id fails on the categories foreign key
func (r *Repository) Create(ctx context.Context, req EntryRequest) (*Entry, error) {
	entry, err := scanEntry(r.db.QueryRow(ctx, queryCreate,
		req.Description,
		req.DueDate,
		req.PaymentDate,
		req.AmountCents,
		req.Notes,
		req.Type,
		req.CategoryID,
		req.PersonID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return entry, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, queryDelete, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete entry %d: %w", id, pgx.ErrNoRows)
	}

	return nil
}

func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry

	err := row.Scan(
		&e.ID,
		&e.Description,
		&e.DueDate,
		&e.PaymentDate,
		&e.AmountCents,
		&e.Notes,
		&e.Type,
		&e.CategoryID,
		&e.PersonID,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}
