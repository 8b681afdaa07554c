package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// MockReviewLogStore implements store.ReviewLogStore for testing
type MockReviewLogStore struct {
	// Custom behavior functions
	CreateFn       func(ctx context.Context, record *domain.ReviewRecord) error
	ListByCardFn   func(ctx context.Context, cardID uuid.UUID) ([]*domain.ReviewRecord, error)
	ListByDeckFn   func(ctx context.Context, deckID uuid.UUID) ([]*domain.ReviewRecord, error)
	DeleteByCardFn func(ctx context.Context, cardID uuid.UUID) error

	// Default response values
	Records []*domain.ReviewRecord
	Err     error

	// Call tracking for verification
	CreateCalls []*domain.ReviewRecord
}

var _ store.ReviewLogStore = (*MockReviewLogStore)(nil)

// Create implements store.ReviewLogStore.Create
func (m *MockReviewLogStore) Create(ctx context.Context, record *domain.ReviewRecord) error {
	m.CreateCalls = append(m.CreateCalls, record)
	if m.CreateFn != nil {
		return m.CreateFn(ctx, record)
	}
	return m.Err
}

// ListByCard implements store.ReviewLogStore.ListByCard
func (m *MockReviewLogStore) ListByCard(
	ctx context.Context,
	cardID uuid.UUID,
) ([]*domain.ReviewRecord, error) {
	if m.ListByCardFn != nil {
		return m.ListByCardFn(ctx, cardID)
	}
	return m.Records, m.Err
}

// ListByDeck implements store.ReviewLogStore.ListByDeck
func (m *MockReviewLogStore) ListByDeck(
	ctx context.Context,
	deckID uuid.UUID,
) ([]*domain.ReviewRecord, error) {
	if m.ListByDeckFn != nil {
		return m.ListByDeckFn(ctx, deckID)
	}
	return m.Records, m.Err
}

// DeleteByCard implements store.ReviewLogStore.DeleteByCard
func (m *MockReviewLogStore) DeleteByCard(ctx context.Context, cardID uuid.UUID) error {
	if m.DeleteByCardFn != nil {
		return m.DeleteByCardFn(ctx, cardID)
	}
	return m.Err
}

// WithTx implements store.ReviewLogStore.WithTx by returning the same mock.
func (m *MockReviewLogStore) WithTx(tx *sql.Tx) store.ReviewLogStore {
	return m
}
