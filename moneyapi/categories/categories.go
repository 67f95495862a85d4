package categories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	list, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Category])
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}

	return list, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*Category, error) {
	var category Category

	if err := r.db.QueryRow(ctx, queryGet, id).Scan(&category.ID, &category.Name); err != nil {
		return nil, fmt.Errorf("failed to get category %d: %w", id, err)
	}

	return &category, nil
}

// category names are unique; a duplicate fails on the unique constraint
func (r *Repository) Create(ctx context.Context, req CategoryRequest) (*Category, error) {
	var category Category

	if err := r.db.QueryRow(ctx, queryCreate, req.Name).Scan(&category.ID, &category.Name); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, queryDelete, id)
	if err != nil {
		return fmt.Errorf("failed to delete category %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete category %d: %w", id, pgx.ErrNoRows)
	}

	return nil
}
