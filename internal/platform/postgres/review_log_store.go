package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// PostgresReviewLogStore implements the store.ReviewLogStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReviewLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReviewLogStore creates a new PostgreSQL implementation of the ReviewLogStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresReviewLogStore(db store.DBTX, logger *slog.Logger) *PostgresReviewLogStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReviewLogStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_log_store")),
	}
}

// Ensure PostgresReviewLogStore implements store.ReviewLogStore interface
var _ store.ReviewLogStore = (*PostgresReviewLogStore)(nil)

const reviewLogColumns = `id, card_id, rating, repetitions, "interval", ease_factor,
	next_review_at, reviewed_at, previous_status, new_status`

// Create implements store.ReviewLogStore.Create
func (s *PostgresReviewLogStore) Create(ctx context.Context, record *domain.ReviewRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO review_logs (id, card_id, rating, repetitions, "interval", ease_factor,
			next_review_at, reviewed_at, previous_status, new_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.CardID,
		record.Rating,
		record.Repetitions,
		record.Interval,
		record.EaseFactor,
		record.NextReviewAt,
		record.ReviewedAt,
		record.PreviousStatus,
		record.NewStatus,
	)
	if err != nil {
		return MapError(err)
	}

	return nil
}

// ListByCard implements store.ReviewLogStore.ListByCard
func (s *PostgresReviewLogStore) ListByCard(
	ctx context.Context,
	cardID uuid.UUID,
) ([]*domain.ReviewRecord, error) {
	query := `
		SELECT ` + reviewLogColumns + `
		FROM review_logs
		WHERE card_id = $1
		ORDER BY reviewed_at ASC`

	return s.queryRecords(ctx, query, cardID)
}

// ListByDeck implements store.ReviewLogStore.ListByDeck
func (s *PostgresReviewLogStore) ListByDeck(
	ctx context.Context,
	deckID uuid.UUID,
) ([]*domain.ReviewRecord, error) {
	query := `
		SELECT r.id, r.card_id, r.rating, r.repetitions, r."interval", r.ease_factor,
			r.next_review_at, r.reviewed_at, r.previous_status, r.new_status
		FROM review_logs r
		JOIN cards c ON c.id = r.card_id
		WHERE c.deck_id = $1
		ORDER BY r.reviewed_at ASC`

	return s.queryRecords(ctx, query, deckID)
}

// DeleteByCard implements store.ReviewLogStore.DeleteByCard
// Deleting zero rows is not an error: a card may have no history yet.
func (s *PostgresReviewLogStore) DeleteByCard(ctx context.Context, cardID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM review_logs WHERE card_id = $1`, cardID)
	if err != nil {
		return MapError(err)
	}
	return nil
}

// WithTx implements store.ReviewLogStore.WithTx
func (s *PostgresReviewLogStore) WithTx(tx *sql.Tx) store.ReviewLogStore {
	return &PostgresReviewLogStore{
		db:     tx,
		logger: s.logger,
	}
}

// queryRecords runs a review log select and scans every row.
func (s *PostgresReviewLogStore) queryRecords(
	ctx context.Context,
	query string,
	args ...any,
) ([]*domain.ReviewRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var records []*domain.ReviewRecord
	for rows.Next() {
		var record domain.ReviewRecord
		var nextReviewAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.CardID,
			&record.Rating,
			&record.Repetitions,
			&record.Interval,
			&record.EaseFactor,
			&nextReviewAt,
			&record.ReviewedAt,
			&record.PreviousStatus,
			&record.NewStatus,
		)
		if err != nil {
			return nil, MapError(err)
		}

		if nextReviewAt.Valid {
			t := nextReviewAt.Time
			record.NextReviewAt = &t
		}

		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return records, nil
}
