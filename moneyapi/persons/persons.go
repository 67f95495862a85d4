package persons

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new person repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]Person, error) {
	rows, err := r.db.Query(ctx, queryList)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	persons := []Person{}

	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}

		persons = append(persons, *person)
	}

	return persons, rows.Err()
}

// finds a person by id; pgx.ErrNoRows when there is none
func (r *Repository) Get(ctx context.Context, id int64) (*Person, error) {
	person, err := scanPerson(r.db.QueryRow(ctx, queryGet, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get person %d: %w", id, err)
	}

	return person, nil
}

func (r *Repository) Create(ctx context.Context, req PersonRequest) (*Person, error) {
	a := req.Address

	person, err := scanPerson(r.db.QueryRow(ctx, queryCreate,
		req.Name, *req.Active,
		a.Street, a.Number, a.Complement, a.District, a.ZipCode, a.City, a.State,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return person, nil
}

// replaces every field of the person
func (r *Repository) Update(ctx context.Context, id int64, req PersonRequest) (*Person, error) {
	a := req.Address

	person, err := scanPerson(r.db.QueryRow(ctx, queryUpdate,
		req.Name, *req.Active,
		a.Street, a.Number, a.Complement, a.District, a.ZipCode, a.City, a.State,
		id,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to update person %d: %w", id, err)
	}

	return person, nil
}

func (r *Repository) SetActive(ctx context.Context, id int64, active bool) error {
	tag, err := r.db.Exec(ctx, querySetActive, active, id)
	if err != nil {
		return fmt.Errorf("failed to set person %d active: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to set person %d active: %w", id, pgx.ErrNoRows)
	}

	return nil
}

// deleting a person that still has entries fails on the entries foreign key
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, queryDelete, id)
	if err != nil {
		return fmt.Errorf("failed to delete person %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("failed to delete person %d: %w", id, pgx.ErrNoRows)
	}

	return nil
}

func scanPerson(row pgx.Row) (*Person, error) {
	var p Person

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Active,
		&p.Address.Street,
		&p.Address.Number,
		&p.Address.Complement,
		&p.Address.District,
		&p.Address.ZipCode,
		&p.Address.City,
		&p.Address.State,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
