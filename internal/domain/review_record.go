package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ReviewRecord-specific validation errors
var (
	// ErrRecordIDEmpty is returned when a review record ID is empty or nil.
	ErrRecordIDEmpty = errors.New("review record ID cannot be empty")

	// ErrRecordCardIDEmpty is returned when a review record's card ID is empty or nil.
	ErrRecordCardIDEmpty = errors.New("review record card ID cannot be empty")

	// ErrRecordReviewedAtZero is returned when a review record has no review time.
	ErrRecordReviewedAtZero = errors.New("review record reviewed-at time cannot be zero")
)

// ReviewRecord is an immutable history row created once per submitted
// rating. It captures the rating together with the card's resulting
// scheduling state so the review log can be audited without replaying
// the algorithm. Records are never mutated after creation; they are
// deleted only when their owning card is deleted.
type ReviewRecord struct {
	ID             uuid.UUID    `json:"id"`
	CardID         uuid.UUID    `json:"card_id"`
	Rating         ReviewRating `json:"rating"`
	Repetitions    int          `json:"repetitions"`
	Interval       int          `json:"interval"`
	EaseFactor     float64      `json:"ease_factor"`
	NextReviewAt   *time.Time   `json:"next_review_at,omitempty"`
	ReviewedAt     time.Time    `json:"reviewed_at"`
	PreviousStatus CardStatus   `json:"previous_status"`
	NewStatus      CardStatus   `json:"new_status"`
}

// NewReviewRecord creates a history row for a review of the given card.
// The schedule argument is the card's state after the review (or its
// unchanged state for cram reviews), and previousStatus is the status
// the card held before the review was applied.
func NewReviewRecord(
	cardID uuid.UUID,
	rating ReviewRating,
	schedule Schedule,
	previousStatus CardStatus,
	reviewedAt time.Time,
) (*ReviewRecord, error) {
	record := &ReviewRecord{
		ID:             uuid.New(),
		CardID:         cardID,
		Rating:         rating,
		Repetitions:    schedule.Repetitions,
		Interval:       schedule.Interval,
		EaseFactor:     schedule.EaseFactor,
		NextReviewAt:   schedule.NextReviewAt,
		ReviewedAt:     reviewedAt,
		PreviousStatus: previousStatus,
		NewStatus:      schedule.Status,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the ReviewRecord has valid data.
func (r *ReviewRecord) Validate() error {
	if r.ID == uuid.Nil {
		return ErrRecordIDEmpty
	}

	if r.CardID == uuid.Nil {
		return ErrRecordCardIDEmpty
	}

	if !r.Rating.IsValid() {
		return ErrInvalidReviewRating
	}

	if !r.PreviousStatus.IsValid() || !r.NewStatus.IsValid() {
		return ErrInvalidCardStatus
	}

	if r.ReviewedAt.IsZero() {
		return ErrRecordReviewedAtZero
	}

	return nil
}
