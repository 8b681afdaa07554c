package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/service/review"
)

// MockReviewService implements review.ReviewService for testing
type MockReviewService struct {
	// Custom behavior functions
	SubmitReviewsFn           func(ctx context.Context, submissions []review.RatingSubmission, reviewedAt time.Time) ([]*domain.ReviewRecord, error)
	SubmitCramReviewsFn       func(ctx context.Context, submissions []review.RatingSubmission, reviewedAt time.Time) ([]*domain.ReviewRecord, error)
	GetDueReviewsFn           func(ctx context.Context, deckID uuid.UUID, limit int) ([]*domain.Card, error)
	GetReviewPreviewFn        func(ctx context.Context, cardID uuid.UUID) (map[domain.ReviewRating]string, error)
	GetConsecutiveStudyDaysFn func(ctx context.Context, deckID uuid.UUID) (*review.StudyStreak, error)

	// Default response values
	Records []*domain.ReviewRecord
	Cards   []*domain.Card
	Preview map[domain.ReviewRating]string
	Streak  *review.StudyStreak
	Err     error
}

var _ review.ReviewService = (*MockReviewService)(nil)

// SubmitReviews implements review.ReviewService.SubmitReviews
func (m *MockReviewService) SubmitReviews(
	ctx context.Context,
	submissions []review.RatingSubmission,
	reviewedAt time.Time,
) ([]*domain.ReviewRecord, error) {
	if m.SubmitReviewsFn != nil {
		return m.SubmitReviewsFn(ctx, submissions, reviewedAt)
	}
	return m.Records, m.Err
}

// SubmitCramReviews implements review.ReviewService.SubmitCramReviews
func (m *MockReviewService) SubmitCramReviews(
	ctx context.Context,
	submissions []review.RatingSubmission,
	reviewedAt time.Time,
) ([]*domain.ReviewRecord, error) {
	if m.SubmitCramReviewsFn != nil {
		return m.SubmitCramReviewsFn(ctx, submissions, reviewedAt)
	}
	return m.Records, m.Err
}

// GetDueReviews implements review.ReviewService.GetDueReviews
func (m *MockReviewService) GetDueReviews(
	ctx context.Context,
	deckID uuid.UUID,
	limit int,
) ([]*domain.Card, error) {
	if m.GetDueReviewsFn != nil {
		return m.GetDueReviewsFn(ctx, deckID, limit)
	}
	return m.Cards, m.Err
}

// GetReviewPreview implements review.ReviewService.GetReviewPreview
func (m *MockReviewService) GetReviewPreview(
	ctx context.Context,
	cardID uuid.UUID,
) (map[domain.ReviewRating]string, error) {
	if m.GetReviewPreviewFn != nil {
		return m.GetReviewPreviewFn(ctx, cardID)
	}
	return m.Preview, m.Err
}

// GetConsecutiveStudyDays implements review.ReviewService.GetConsecutiveStudyDays
func (m *MockReviewService) GetConsecutiveStudyDays(
	ctx context.Context,
	deckID uuid.UUID,
) (*review.StudyStreak, error) {
	if m.GetConsecutiveStudyDaysFn != nil {
		return m.GetConsecutiveStudyDaysFn(ctx, deckID)
	}
	return m.Streak, m.Err
}
