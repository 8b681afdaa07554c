package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card to the store.
	// All cards must be valid according to domain validation rules.
	// Returns validation errors if the card data is invalid.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// UpdateSchedule persists a card's scheduling fields (status, step
	// index, ease factor, interval, repetitions, next review date) and
	// its UpdatedAt timestamp. Returns ErrCardNotFound if the card does
	// not exist.
	//
	// This method MUST be called within a transaction together with the
	// review log insert so a batch submission is all-or-nothing. Use the
	// WithTx method with store.RunInTransaction.
	UpdateSchedule(ctx context.Context, card *domain.Card) error

	// ListDue retrieves the cards in a deck that are due for review at
	// the given time: every card with status new, plus every scheduled
	// card whose next review date is not after now. Never-scheduled new
	// cards sort before scheduled cards; scheduled cards sort ascending
	// by next review date. A limit of 0 or less returns all due cards.
	ListDue(ctx context.Context, deckID uuid.UUID, now time.Time, limit int) ([]*domain.Card, error)

	// Delete removes a card from the store by its ID.
	// Returns ErrCardNotFound if the card does not exist.
	//
	// Review log rows referencing the card are removed by the database's
	// ON DELETE CASCADE constraint; implementations on backends without
	// cascading deletes must remove them explicitly.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a new CardStore instance that uses the provided transaction.
	// This allows for multiple operations to be executed within a single transaction.
	// The transaction should be created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) CardStore
}
