package srs

import (
	"errors"
	"testing"
	"time"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

func TestCalculateNextRejectsInvalidRating(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	_, err := svc.CalculateNext(domain.Schedule{Status: domain.CardStatusNew}, "perfect", time.Now())
	if !errors.Is(err, ErrInvalidRating) {
		t.Errorf("got %v, want ErrInvalidRating", err)
	}
}

func TestCalculateNextSetsProjectedDate(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	next, err := svc.CalculateNext(
		domain.Schedule{Status: domain.CardStatusNew, EaseFactor: 2.5},
		domain.ReviewRatingGood,
		now,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.NextReviewAt == nil {
		t.Fatal("NextReviewAt is nil, want projected date")
	}
	if want := now.Add(10 * time.Minute); !next.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt: got %v, want %v", next.NextReviewAt, want)
	}
}

func TestCalculateNextDeterministicWithoutFuzz(t *testing.T) {
	t.Parallel()
	settings := DefaultSettings()
	settings.UseFuzz = false
	svc, err := NewService(settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	card := domain.Schedule{Status: domain.CardStatusReview, EaseFactor: 2.5, Interval: 10}
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	first, err := svc.CalculateNext(card, domain.ReviewRatingGood, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.CalculateNext(card, domain.ReviewRatingGood, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Interval != second.Interval ||
		first.Status != second.Status ||
		!first.NextReviewAt.Equal(*second.NextReviewAt) {
		t.Errorf("repeated calls diverged: %+v vs %+v", first, second)
	}
}

func TestNewServiceRejectsInvalidSettings(t *testing.T) {
	t.Parallel()

	settings := DefaultSettings()
	settings.LearningSteps = nil

	_, err := NewService(settings)
	if !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("got %v, want ErrInvalidSettings", err)
	}
	if !errors.Is(err, ErrNoLearningSteps) {
		t.Errorf("got %v, want wrapped ErrNoLearningSteps", err)
	}
}

func TestNewServiceNilSettingsUsesDefaults(t *testing.T) {
	t.Parallel()

	svc, err := NewService(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Settings().StartingEase != 2.5 {
		t.Errorf("startingEase: got %f, want 2.5", svc.Settings().StartingEase)
	}
}
