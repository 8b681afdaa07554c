// Package review implements the review orchestrator: the transactional
// logic that applies rating submissions to persisted cards, records
// review history, and derives due queues, previews, and study streaks.
package review

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// RatingSubmission pairs a card with the rating a learner gave it.
type RatingSubmission struct {
	CardID uuid.UUID           `json:"card_id"`
	Rating domain.ReviewRating `json:"rating"`
}

// StudyStreak describes a deck's run of consecutive study days.
// StreakStartDate and LastStudyDate are calendar dates (midnight UTC);
// both are nil when the deck has no review history at all.
type StudyStreak struct {
	ConsecutiveDays int        `json:"consecutive_days"`
	StreakStartDate *time.Time `json:"streak_start_date,omitempty"`
	LastStudyDate   *time.Time `json:"last_study_date,omitempty"`
}

// ReviewService provides the review operations for flashcards
// scheduled by the spaced repetition algorithm.
type ReviewService interface {
	// SubmitReviews applies a batch of rating submissions in input order.
	// For each submission the card is loaded, fed through the scheduler,
	// persisted with its new scheduling state, and a history record is
	// appended. The whole batch is one atomic unit: a missing card aborts
	// the submission with ErrCardNotFound and no partial writes.
	//
	// reviewedAt is the time the reviews happened; pass the zero time to
	// use "now". An empty batch returns an empty result without touching
	// the stores.
	SubmitReviews(
		ctx context.Context,
		submissions []RatingSubmission,
		reviewedAt time.Time,
	) ([]*domain.ReviewRecord, error)

	// SubmitCramReviews records practice reviews without invoking the
	// scheduler or writing the cards' scheduling state: only history
	// records are appended, each carrying the card's existing schedule
	// and an unchanged status. Lookup and atomicity behavior match
	// SubmitReviews.
	SubmitCramReviews(
		ctx context.Context,
		submissions []RatingSubmission,
		reviewedAt time.Time,
	) ([]*domain.ReviewRecord, error)

	// GetDueReviews returns the deck's due cards: every card with status
	// new, plus every scheduled card whose next review date has passed.
	// New cards sort before scheduled ones; scheduled cards sort
	// ascending by next review date. A limit of 0 or less returns all
	// due cards. Returns ErrDeckNotFound if the deck does not exist.
	GetDueReviews(ctx context.Context, deckID uuid.UUID, limit int) ([]*domain.Card, error)

	// GetReviewPreview computes, for each of the four ratings, the
	// human-readable interval the card would receive ("<n> min",
	// "1 day", "<n> days"). It is side-effect free: the card's persisted
	// state is never modified, and repeated calls without an intervening
	// submission yield identical results. Returns ErrCardNotFound if the
	// card does not exist.
	GetReviewPreview(ctx context.Context, cardID uuid.UUID) (map[domain.ReviewRating]string, error)

	// GetConsecutiveStudyDays computes the deck's study streak: the
	// number of consecutive calendar days, ending today or yesterday, on
	// which at least one review was recorded. A most recent study date
	// earlier than yesterday means the streak is broken and the count is
	// zero. Returns ErrDeckNotFound if the deck does not exist.
	GetConsecutiveStudyDays(ctx context.Context, deckID uuid.UUID) (*StudyStreak, error)
}

// Common error types for ReviewService
var (
	// ErrCardNotFound indicates that a referenced card does not exist.
	ErrCardNotFound = errors.New("card not found")

	// ErrDeckNotFound indicates that a referenced deck does not exist.
	ErrDeckNotFound = errors.New("deck not found")

	// ErrInvalidRating indicates a submission carried an unknown rating.
	ErrInvalidRating = errors.New("invalid review rating")
)

// ServiceError wraps errors from the review service with additional context.
// This allows consumers to differentiate between different types of service errors
// using errors.As instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "submit_reviews", "get_due_reviews")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError returns a new ServiceError for the given operation.
func NewServiceError(operation, message string, err error) *ServiceError {
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
