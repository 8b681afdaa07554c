package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// cardColumns is the column list shared by every card select.
// "interval" needs quoting because it is a reserved word in PostgreSQL.
const cardColumns = `id, deck_id, content, status, step_index, ease_factor, "interval",
	repetitions, next_review_at, created_at, updated_at`

// Create implements store.CardStore.Create
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO cards (id, deck_id, content, status, step_index, ease_factor, "interval",
			repetitions, next_review_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := s.db.ExecContext(ctx, query,
		card.ID,
		card.DeckID,
		card.Content,
		card.Status,
		card.StepIndex,
		card.EaseFactor,
		card.Interval,
		card.Repetitions,
		card.NextReviewAt,
		card.CreatedAt,
		card.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// GetByID implements store.CardStore.GetByID
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCardNotFound
		}
		return nil, MapError(err)
	}

	return card, nil
}

// UpdateSchedule implements store.CardStore.UpdateSchedule
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) UpdateSchedule(ctx context.Context, card *domain.Card) error {
	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE cards
		SET status = $1, step_index = $2, ease_factor = $3, "interval" = $4,
			repetitions = $5, next_review_at = $6, updated_at = $7
		WHERE id = $8`

	result, err := s.db.ExecContext(ctx, query,
		card.Status,
		card.StepIndex,
		card.EaseFactor,
		card.Interval,
		card.Repetitions,
		card.NextReviewAt,
		card.UpdatedAt,
		card.ID,
	)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, "card")
}

// ListDue implements store.CardStore.ListDue
// Never-scheduled cards sort first (next_review_at IS NULL), then by
// ascending next review date; created_at breaks ties deterministically.
func (s *PostgresCardStore) ListDue(
	ctx context.Context,
	deckID uuid.UUID,
	now time.Time,
	limit int,
) ([]*domain.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE deck_id = $1
		  AND (status = $2 OR (next_review_at IS NOT NULL AND next_review_at <= $3))
		ORDER BY next_review_at ASC NULLS FIRST, created_at ASC`

	args := []any{deckID, domain.CardStatusNew, now}
	if limit > 0 {
		query += ` LIMIT $4`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var cards []*domain.Card
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, MapError(err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return cards, nil
}

// Delete implements store.CardStore.Delete
// Review log rows are removed by the schema's ON DELETE CASCADE.
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, "card")
}

// WithTx implements store.CardStore.WithTx
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{
		db:     tx,
		logger: s.logger,
	}
}

// scanTarget abstracts *sql.Row and *sql.Rows for scanCard.
type scanTarget interface {
	Scan(dest ...any) error
}

// scanCard reads one card row in cardColumns order.
func scanCard(row scanTarget) (*domain.Card, error) {
	var card domain.Card
	var nextReviewAt sql.NullTime

	err := row.Scan(
		&card.ID,
		&card.DeckID,
		&card.Content,
		&card.Status,
		&card.StepIndex,
		&card.EaseFactor,
		&card.Interval,
		&card.Repetitions,
		&nextReviewAt,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if nextReviewAt.Valid {
		t := nextReviewAt.Time
		card.NextReviewAt = &t
	}

	return &card, nil
}
