package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewCard(t *testing.T) {
	t.Parallel() // Enable parallel execution
	deckID := uuid.New()
	content := json.RawMessage(`{"front": "What is Go?", "back": "A programming language"}`)

	card, err := NewCard(deckID, content, 2.5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if card.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if card.DeckID != deckID {
		t.Errorf("Expected deck ID %s, got %s", deckID, card.DeckID)
	}

	if string(card.Content) != string(content) {
		t.Errorf("Expected content %s, got %s", string(content), string(card.Content))
	}

	if card.Status != CardStatusNew {
		t.Errorf("Expected status %q, got %q", CardStatusNew, card.Status)
	}

	if card.StepIndex != 0 || card.Interval != 0 || card.Repetitions != 0 {
		t.Errorf("Expected zeroed scheduling counters, got step=%d interval=%d repetitions=%d",
			card.StepIndex, card.Interval, card.Repetitions)
	}

	if card.EaseFactor != 2.5 {
		t.Errorf("Expected ease factor 2.5, got %f", card.EaseFactor)
	}

	if card.NextReviewAt != nil {
		t.Errorf("Expected nil NextReviewAt for a new card, got %v", card.NextReviewAt)
	}

	if card.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}
}

func TestCardValidate(t *testing.T) {
	t.Parallel()
	deckID := uuid.New()
	content := json.RawMessage(`{"front": "q", "back": "a"}`)

	validCard := func() *Card {
		card, err := NewCard(deckID, content, 2.5)
		if err != nil {
			t.Fatalf("failed to create valid card: %v", err)
		}
		return card
	}

	testCases := []struct {
		name      string
		mutate    func(*Card)
		expectErr error
	}{
		{
			name:      "valid card",
			mutate:    func(c *Card) {},
			expectErr: nil,
		},
		{
			name:      "nil ID",
			mutate:    func(c *Card) { c.ID = uuid.Nil },
			expectErr: ErrCardIDEmpty,
		},
		{
			name:      "nil deck ID",
			mutate:    func(c *Card) { c.DeckID = uuid.Nil },
			expectErr: ErrCardDeckIDEmpty,
		},
		{
			name:      "empty content",
			mutate:    func(c *Card) { c.Content = nil },
			expectErr: ErrCardContentEmpty,
		},
		{
			name:      "malformed content",
			mutate:    func(c *Card) { c.Content = json.RawMessage(`{"front":`) },
			expectErr: ErrCardContentInvalid,
		},
		{
			name:      "unknown status",
			mutate:    func(c *Card) { c.Status = "suspended" },
			expectErr: ErrInvalidCardStatus,
		},
		{
			name:      "negative step index",
			mutate:    func(c *Card) { c.StepIndex = -1 },
			expectErr: ErrCardStepNegative,
		},
		{
			name:      "non-positive ease factor",
			mutate:    func(c *Card) { c.EaseFactor = 0 },
			expectErr: ErrCardEaseTooLow,
		},
		{
			name:      "negative interval",
			mutate:    func(c *Card) { c.Interval = -3 },
			expectErr: ErrCardIntervalNegative,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card := validCard()
			tc.mutate(card)

			err := card.Validate()
			if tc.expectErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.expectErr) {
				t.Errorf("got %v, want %v", err, tc.expectErr)
			}
		})
	}
}

func TestCardApplySchedule(t *testing.T) {
	t.Parallel()
	card, err := NewCard(uuid.New(), json.RawMessage(`{"front": "q"}`), 2.5)
	if err != nil {
		t.Fatalf("failed to create card: %v", err)
	}

	due := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	next := Schedule{
		Status:       CardStatusReview,
		StepIndex:    0,
		EaseFactor:   2.35,
		Interval:     12,
		Repetitions:  4,
		NextReviewAt: &due,
	}

	card.ApplySchedule(next, now)

	if card.Status != CardStatusReview {
		t.Errorf("status: got %q, want %q", card.Status, CardStatusReview)
	}
	if card.Interval != 12 || card.EaseFactor != 2.35 || card.Repetitions != 4 {
		t.Errorf("scheduling fields not applied: %+v", card)
	}
	if card.NextReviewAt == nil || !card.NextReviewAt.Equal(due) {
		t.Errorf("NextReviewAt: got %v, want %v", card.NextReviewAt, due)
	}
	if !card.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt: got %v, want %v", card.UpdatedAt, now)
	}

	// The round trip back out must reproduce what was applied.
	if got := card.Schedule(); got != next {
		t.Errorf("Schedule(): got %+v, want %+v", got, next)
	}
}
