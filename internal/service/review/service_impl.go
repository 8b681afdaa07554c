package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/domain/srs"
	"github.com/flashdeck/flashdeck-api/internal/platform/logger"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// Verify interface compliance at compile time
var _ ReviewService = (*reviewServiceImpl)(nil)

// reviewServiceImpl implements the ReviewService interface.
type reviewServiceImpl struct {
	transactor store.Transactor
	cardStore  store.CardStore
	deckStore  store.DeckStore
	logStore   store.ReviewLogStore
	scheduler  srs.Service
	logger     *slog.Logger
}

// NewReviewService creates a new ReviewService implementation.
func NewReviewService(
	transactor store.Transactor,
	cardStore store.CardStore,
	deckStore store.DeckStore,
	logStore store.ReviewLogStore,
	scheduler srs.Service,
	logger *slog.Logger,
) ReviewService {
	if transactor == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("transactor cannot be nil")
	}
	if cardStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cardStore cannot be nil")
	}
	if deckStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("deckStore cannot be nil")
	}
	if logStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logStore cannot be nil")
	}
	if scheduler == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("scheduler cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &reviewServiceImpl{
		transactor: transactor,
		cardStore:  cardStore,
		deckStore:  deckStore,
		logStore:   logStore,
		scheduler:  scheduler,
		logger:     logger.With(slog.String("component", "review_service")),
	}
}

// SubmitReviews implements ReviewService.SubmitReviews.
func (s *reviewServiceImpl) SubmitReviews(
	ctx context.Context,
	submissions []RatingSubmission,
	reviewedAt time.Time,
) ([]*domain.ReviewRecord, error) {
	return s.submit(ctx, submissions, reviewedAt, false)
}

// SubmitCramReviews implements ReviewService.SubmitCramReviews.
func (s *reviewServiceImpl) SubmitCramReviews(
	ctx context.Context,
	submissions []RatingSubmission,
	reviewedAt time.Time,
) ([]*domain.ReviewRecord, error) {
	return s.submit(ctx, submissions, reviewedAt, true)
}

// submit is the shared batch loop behind both submission modes. In cram
// mode the scheduler is never invoked and card scheduling state is never
// written; only history records are appended.
func (s *reviewServiceImpl) submit(
	ctx context.Context,
	submissions []RatingSubmission,
	reviewedAt time.Time,
	cram bool,
) ([]*domain.ReviewRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for _, sub := range submissions {
		if !sub.Rating.IsValid() {
			log.Warn("invalid review rating in submission",
				slog.String("card_id", sub.CardID.String()),
				slog.String("rating", string(sub.Rating)))
			return nil, fmt.Errorf("%w: %q", ErrInvalidRating, sub.Rating)
		}
	}

	if len(submissions) == 0 {
		return []*domain.ReviewRecord{}, nil
	}

	if reviewedAt.IsZero() {
		reviewedAt = time.Now().UTC()
	} else {
		reviewedAt = reviewedAt.UTC()
	}

	records := make([]*domain.ReviewRecord, 0, len(submissions))
	err := s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		cards := s.cardStore.WithTx(tx)
		logs := s.logStore.WithTx(tx)

		for _, sub := range submissions {
			record, err := s.applySubmission(ctx, cards, logs, sub, reviewedAt, cram)
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCardNotFound) || errors.Is(err, ErrInvalidRating) {
			return nil, err
		}

		log.Error("failed to submit reviews",
			slog.String("error", err.Error()),
			slog.Int("batch_size", len(submissions)),
			slog.Bool("cram", cram))
		return nil, NewServiceError("submit_reviews", "failed to apply rating batch", err)
	}

	log.Debug("review batch applied",
		slog.Int("batch_size", len(submissions)),
		slog.Bool("cram", cram),
		slog.Time("reviewed_at", reviewedAt))
	return records, nil
}

// applySubmission handles one rating inside the batch transaction.
func (s *reviewServiceImpl) applySubmission(
	ctx context.Context,
	cards store.CardStore,
	logs store.ReviewLogStore,
	sub RatingSubmission,
	reviewedAt time.Time,
	cram bool,
) (*domain.ReviewRecord, error) {
	card, err := cards.GetByID(ctx, sub.CardID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrCardNotFound, sub.CardID)
		}
		return nil, fmt.Errorf("failed to get card %s: %w", sub.CardID, err)
	}

	schedule := card.Schedule()
	previousStatus := card.Status

	if !cram {
		schedule, err = s.scheduler.CalculateNext(schedule, sub.Rating, reviewedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate next schedule for card %s: %w", sub.CardID, err)
		}

		card.ApplySchedule(schedule, reviewedAt)
		if err := cards.UpdateSchedule(ctx, card); err != nil {
			return nil, fmt.Errorf("failed to update card %s: %w", sub.CardID, err)
		}
	}

	record, err := domain.NewReviewRecord(card.ID, sub.Rating, schedule, previousStatus, reviewedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to build review record for card %s: %w", sub.CardID, err)
	}

	if err := logs.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to append review record for card %s: %w", sub.CardID, err)
	}

	return record, nil
}

// GetDueReviews implements ReviewService.GetDueReviews.
func (s *reviewServiceImpl) GetDueReviews(
	ctx context.Context,
	deckID uuid.UUID,
	limit int,
) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.requireDeck(ctx, deckID); err != nil {
		return nil, err
	}

	cards, err := s.cardStore.ListDue(ctx, deckID, time.Now().UTC(), limit)
	if err != nil {
		log.Error("failed to list due cards",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		return nil, NewServiceError("get_due_reviews", "failed to list due cards", err)
	}

	log.Debug("due cards listed",
		slog.String("deck_id", deckID.String()),
		slog.Int("count", len(cards)))
	return cards, nil
}

// GetReviewPreview implements ReviewService.GetReviewPreview.
// Each rating is previewed independently against the card's current
// persisted state; the card itself is never written.
func (s *reviewServiceImpl) GetReviewPreview(
	ctx context.Context,
	cardID uuid.UUID,
) (map[domain.ReviewRating]string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.cardStore.GetByID(ctx, cardID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
		}
		log.Error("failed to get card for preview",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID.String()))
		return nil, NewServiceError("get_review_preview", "failed to get card", err)
	}

	now := time.Now().UTC()
	preview := make(map[domain.ReviewRating]string, len(domain.AllReviewRatings))
	for _, rating := range domain.AllReviewRatings {
		next, err := s.scheduler.CalculateNext(card.Schedule(), rating, now)
		if err != nil {
			return nil, NewServiceError("get_review_preview", "failed to calculate preview", err)
		}
		preview[rating] = srs.FormatInterval(next)
	}

	return preview, nil
}

// GetConsecutiveStudyDays implements ReviewService.GetConsecutiveStudyDays.
func (s *reviewServiceImpl) GetConsecutiveStudyDays(
	ctx context.Context,
	deckID uuid.UUID,
) (*StudyStreak, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.requireDeck(ctx, deckID); err != nil {
		return nil, err
	}

	records, err := s.logStore.ListByDeck(ctx, deckID)
	if err != nil {
		log.Error("failed to list review records",
			slog.String("error", err.Error()),
			slog.String("deck_id", deckID.String()))
		return nil, NewServiceError("get_consecutive_study_days", "failed to list review records", err)
	}

	streak := computeStreak(records, time.Now().UTC())

	log.Debug("study streak computed",
		slog.String("deck_id", deckID.String()),
		slog.Int("consecutive_days", streak.ConsecutiveDays))
	return streak, nil
}

// requireDeck verifies the deck exists, mapping absence to ErrDeckNotFound.
func (s *reviewServiceImpl) requireDeck(ctx context.Context, deckID uuid.UUID) error {
	_, err := s.deckStore.GetByID(ctx, deckID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return fmt.Errorf("%w: %s", ErrDeckNotFound, deckID)
		}
		return NewServiceError("require_deck", "failed to get deck", err)
	}
	return nil
}
