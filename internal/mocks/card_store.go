package mocks

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// MockCardStore implements store.CardStore for testing
type MockCardStore struct {
	// Custom behavior functions
	CreateFn         func(ctx context.Context, card *domain.Card) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	UpdateScheduleFn func(ctx context.Context, card *domain.Card) error
	ListDueFn        func(ctx context.Context, deckID uuid.UUID, now time.Time, limit int) ([]*domain.Card, error)
	DeleteFn         func(ctx context.Context, id uuid.UUID) error

	// Default response values
	Card  *domain.Card
	Cards []*domain.Card
	Err   error

	// Call tracking for verification
	UpdateScheduleCalls []*domain.Card
}

var _ store.CardStore = (*MockCardStore)(nil)

// Create implements store.CardStore.Create
func (m *MockCardStore) Create(ctx context.Context, card *domain.Card) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, card)
	}
	return m.Err
}

// GetByID implements store.CardStore.GetByID
func (m *MockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Card, m.Err
}

// UpdateSchedule implements store.CardStore.UpdateSchedule
func (m *MockCardStore) UpdateSchedule(ctx context.Context, card *domain.Card) error {
	m.UpdateScheduleCalls = append(m.UpdateScheduleCalls, card)
	if m.UpdateScheduleFn != nil {
		return m.UpdateScheduleFn(ctx, card)
	}
	return m.Err
}

// ListDue implements store.CardStore.ListDue
func (m *MockCardStore) ListDue(
	ctx context.Context,
	deckID uuid.UUID,
	now time.Time,
	limit int,
) ([]*domain.Card, error) {
	if m.ListDueFn != nil {
		return m.ListDueFn(ctx, deckID, now, limit)
	}
	return m.Cards, m.Err
}

// Delete implements store.CardStore.Delete
func (m *MockCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// WithTx implements store.CardStore.WithTx by returning the same mock,
// so transactional code paths can be exercised without a database.
func (m *MockCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return m
}
