package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// ReviewLogStore defines the interface for review history persistence.
// The log is append-only: rows are created once per submitted rating and
// never mutated, and are removed only when their owning card is deleted.
type ReviewLogStore interface {
	// Create appends a review record to the log.
	// Returns validation errors if the record data is invalid.
	//
	// When called as part of a review submission this MUST share a
	// transaction with the card schedule update. Use the WithTx method
	// with store.RunInTransaction.
	Create(ctx context.Context, record *domain.ReviewRecord) error

	// ListByCard retrieves all review records for a card, ordered by
	// review time ascending. Returns an empty slice when the card has
	// no history.
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]*domain.ReviewRecord, error)

	// ListByDeck retrieves all review records for every card in a deck,
	// ordered by review time ascending. Returns an empty slice when the
	// deck has no history.
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.ReviewRecord, error)

	// DeleteByCard removes every review record for a card. Used for
	// cleanup when a card is removed on a backend without cascading
	// deletes; it is not part of the scheduling algorithm.
	DeleteByCard(ctx context.Context, cardID uuid.UUID) error

	// WithTx returns a new ReviewLogStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ReviewLogStore
}
