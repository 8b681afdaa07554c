// Package stats aggregates review history into deck-level statistics.
package stats

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/platform/logger"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// ErrDeckNotFound indicates that a referenced deck does not exist.
var ErrDeckNotFound = errors.New("deck not found")

// DeckStatistics summarizes a deck's accumulated review history.
type DeckStatistics struct {
	DeckID uuid.UUID `json:"deck_id"`

	// TotalReviews counts every recorded review, cram included.
	TotalReviews int `json:"total_reviews"`

	// CorrectReviews counts reviews rated hard, good, or easy.
	CorrectReviews int `json:"correct_reviews"`

	// CorrectPercentage is CorrectReviews over TotalReviews as a
	// percentage, rounded to two decimal places. Zero when the deck
	// has no reviews.
	CorrectPercentage float64 `json:"correct_percentage"`

	// RatingCounts holds the number of reviews per rating. Every
	// rating is present, with zero counts for unused ratings.
	RatingCounts map[domain.ReviewRating]int `json:"rating_counts"`
}

// StatsService derives aggregate statistics from review history.
type StatsService interface {
	// GetDeckStatistics computes totals, accuracy, and per-rating
	// counts across the deck's entire review history. Returns
	// ErrDeckNotFound if the deck does not exist.
	GetDeckStatistics(ctx context.Context, deckID uuid.UUID) (*DeckStatistics, error)
}

// Verify interface compliance at compile time
var _ StatsService = (*statsServiceImpl)(nil)

type statsServiceImpl struct {
	deckStore store.DeckStore
	logStore  store.ReviewLogStore
	logger    *slog.Logger
}

// NewStatsService creates a new StatsService implementation.
func NewStatsService(
	deckStore store.DeckStore,
	logStore store.ReviewLogStore,
	logger *slog.Logger,
) StatsService {
	if deckStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("deckStore cannot be nil")
	}
	if logStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &statsServiceImpl{
		deckStore: deckStore,
		logStore:  logStore,
		logger:    logger.With(slog.String("component", "stats_service")),
	}
}

// GetDeckStatistics implements StatsService.GetDeckStatistics.
func (s *statsServiceImpl) GetDeckStatistics(
	ctx context.Context,
	deckID uuid.UUID,
) (*DeckStatistics, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.deckStore.GetByID(ctx, deckID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrDeckNotFound, deckID)
		}
		log.Error("failed to get deck",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		return nil, fmt.Errorf("failed to get deck %s: %w", deckID, err)
	}

	records, err := s.logStore.ListByDeck(ctx, deckID)
	if err != nil {
		log.Error("failed to list review records",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		return nil, fmt.Errorf("failed to list review records for deck %s: %w", deckID, err)
	}

	statistics := aggregate(deckID, records)

	log.Debug("deck statistics computed",
		slog.String("deck_id", deckID.String()),
		slog.Int("total_reviews", statistics.TotalReviews))
	return statistics, nil
}

// aggregate folds review records into deck statistics.
func aggregate(deckID uuid.UUID, records []*domain.ReviewRecord) *DeckStatistics {
	counts := make(map[domain.ReviewRating]int, len(domain.AllReviewRatings))
	for _, rating := range domain.AllReviewRatings {
		counts[rating] = 0
	}

	correct := 0
	for _, record := range records {
		counts[record.Rating]++
		if record.Rating.IsCorrect() {
			correct++
		}
	}

	total := len(records)
	percentage := 0.0
	if total > 0 {
		percentage = roundTwoPlaces(float64(correct) / float64(total) * 100)
	}

	return &DeckStatistics{
		DeckID:            deckID,
		TotalReviews:      total,
		CorrectReviews:    correct,
		CorrectPercentage: percentage,
		RatingCounts:      counts,
	}
}

func roundTwoPlaces(v float64) float64 {
	return math.Round(v*100) / 100
}
