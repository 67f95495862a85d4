package entries

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	apperrors "codeberg.org/moneyapi/server/internal/errors"
	"codeberg.org/moneyapi/server/moneyapi/persons"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersons struct {
	persons map[int64]*persons.Person
	err     error
}

func (f *fakePersons) Get(_ context.Context, id int64) (*persons.Person, error) {
	if f.err != nil {
		return nil, f.err
	}

	p, ok := f.persons[id]
	if !ok {
		return nil, fmt.Errorf("failed to get person %d: %w", id, pgx.ErrNoRows)
	}

	return p, nil
}

type fakeStore struct {
	created []EntryRequest
}

func (f *fakeStore) Create(_ context.Context, req EntryRequest) (*Entry, error) {
	f.created = append(f.created, req)

	return &Entry{
		ID:          int64(len(f.created)),
		Description: req.Description,
		AmountCents: req.AmountCents,
		Type:        req.Type,
		PersonID:    req.PersonID,
		CategoryID:  req.CategoryID,
	}, nil
}

func newRequest(personID int64) EntryRequest {
	return EntryRequest{
		Description: "Rent",
		DueDate:     time.Date(2026, 11, 5, 0, 0, 0, 0, time.UTC),
		AmountCents: 150000,
		Type:        TypeExpense,
		CategoryID:  1,
		PersonID:    personID,
	}
}

func TestService_Create(t *testing.T) {
	finder := &fakePersons{persons: map[int64]*persons.Person{
		1: {ID: 1, Name: "Ana", Active: true},
		2: {ID: 2, Name: "Bruno", Active: false},
	}}

	t.Run("active person", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewService(store, finder)

		entry, err := svc.Create(context.Background(), newRequest(1))

		require.NoError(t, err)
		assert.Equal(t, int64(1), entry.PersonID)
		assert.Len(t, store.created, 1)
	})

	t.Run("inactive person", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewService(store, finder)

		_, err := svc.Create(context.Background(), newRequest(2))

		var tagged *apperrors.Error
		require.ErrorAs(t, err, &tagged)
		assert.Equal(t, apperrors.KindEntityInvalid, tagged.Kind)
		assert.NoError(t, tagged.Err)
		assert.Empty(t, store.created)
	})

	t.Run("missing person", func(t *testing.T) {
		store := &fakeStore{}
		svc := NewService(store, finder)

		_, err := svc.Create(context.Background(), newRequest(99))

		var tagged *apperrors.Error
		require.ErrorAs(t, err, &tagged)
		assert.Equal(t, apperrors.KindEntityInvalid, tagged.Kind)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
		assert.Empty(t, store.created)
	})

	t.Run("lookup failure is passed through", func(t *testing.T) {
		lookupErr := errors.New("connection reset")
		svc := NewService(&fakeStore{}, &fakePersons{err: lookupErr})

		_, err := svc.Create(context.Background(), newRequest(1))

		assert.ErrorIs(t, err, lookupErr)

		var tagged *apperrors.Error
		assert.False(t, errors.As(err, &tagged))
	})
}
