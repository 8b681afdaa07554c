package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// MockDeckStore implements store.DeckStore for testing
type MockDeckStore struct {
	// Custom behavior functions
	CreateFn  func(ctx context.Context, deck *domain.Deck) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Default response values
	Deck *domain.Deck
	Err  error
}

var _ store.DeckStore = (*MockDeckStore)(nil)

// Create implements store.DeckStore.Create
func (m *MockDeckStore) Create(ctx context.Context, deck *domain.Deck) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, deck)
	}
	return m.Err
}

// GetByID implements store.DeckStore.GetByID
func (m *MockDeckStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Deck, m.Err
}

// Delete implements store.DeckStore.Delete
func (m *MockDeckStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// WithTx implements store.DeckStore.WithTx by returning the same mock.
func (m *MockDeckStore) WithTx(tx *sql.Tx) store.DeckStore {
	return m
}
