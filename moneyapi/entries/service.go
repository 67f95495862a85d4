package entries

import (
	"context"
	"errors"

	apperrors "codeberg.org/moneyapi/server/internal/errors"
	"github.com/jackc/pgx/v5"
)

func NewService(store Store, persons PersonFinder) *Service {
	return &Service{store: store, persons: persons}
}

// books a new entry. the person must exist and be active.
func (s *Service) Create(ctx context.Context, req EntryRequest) (*Entry, error) {
	person, err := s.persons.Get(ctx, req.PersonID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.PersonNonexistentOrInactive(req.PersonID, err)
	}

	if err != nil {
		return nil, err
	}

	if !person.Active {
		return nil, apperrors.PersonNonexistentOrInactive(req.PersonID, nil)
	}

	return s.store.Create(ctx, req)
}
