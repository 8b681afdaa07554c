package domain

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardDeckIDEmpty is returned when a card's deck ID is empty or nil.
	ErrCardDeckIDEmpty = errors.New("card deck ID cannot be empty")

	// ErrCardContentEmpty is returned when a card's content is empty.
	ErrCardContentEmpty = errors.New("card content cannot be empty")

	// ErrCardContentInvalid is returned when a card's content is not valid JSON.
	ErrCardContentInvalid = errors.New("card content must be valid JSON")

	// ErrCardEaseTooLow is returned when a card's ease factor is not positive.
	ErrCardEaseTooLow = errors.New("card ease factor must be positive")

	// ErrCardStepNegative is returned when a card's step index is negative.
	ErrCardStepNegative = errors.New("card step index cannot be negative")

	// ErrCardIntervalNegative is returned when a card's interval is negative.
	ErrCardIntervalNegative = errors.New("card interval cannot be negative")
)

// Card represents a flashcard together with its scheduling state.
// The content is stored as a JSONB structure, allowing for flexible
// card formats and future extensibility. The scheduling fields are
// mutated exclusively by the review service, which applies the output
// of the scheduler via ApplySchedule.
type Card struct {
	ID           uuid.UUID       `json:"id"`
	DeckID       uuid.UUID       `json:"deck_id"`
	Content      json.RawMessage `json:"content"`
	Status       CardStatus      `json:"status"`
	StepIndex    int             `json:"step_index"`
	EaseFactor   float64         `json:"ease_factor"`
	Interval     int             `json:"interval"`
	Repetitions  int             `json:"repetitions"`
	NextReviewAt *time.Time      `json:"next_review_at,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CardContent represents the structure of the content field in a Card.
// This is provided as a sample structure but cards can have flexible content
// as it's stored as a JSONB field.
type CardContent struct {
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Hint  string   `json:"hint,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// NewCard creates a new Card in the given deck with default scheduling
// state: status new, step 0, the supplied starting ease, no interval,
// and no next review date. It generates a new UUID for the card ID and
// sets the creation/update timestamps. Returns an error if validation fails.
func NewCard(deckID uuid.UUID, content json.RawMessage, startingEase float64) (*Card, error) {
	now := time.Now().UTC()
	card := &Card{
		ID:         uuid.New(),
		DeckID:     deckID,
		Content:    content,
		Status:     CardStatusNew,
		StepIndex:  0,
		EaseFactor: startingEase,
		Interval:   0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.DeckID == uuid.Nil {
		return ErrCardDeckIDEmpty
	}

	if len(c.Content) == 0 {
		return ErrCardContentEmpty
	}

	var js json.RawMessage
	if err := json.Unmarshal(c.Content, &js); err != nil {
		return ErrCardContentInvalid
	}

	if !c.Status.IsValid() {
		return ErrInvalidCardStatus
	}

	if c.StepIndex < 0 {
		return ErrCardStepNegative
	}

	if c.EaseFactor <= 0 {
		return ErrCardEaseTooLow
	}

	if c.Interval < 0 {
		return ErrCardIntervalNegative
	}

	return nil
}

// Schedule returns a copy of the card's scheduling state.
func (c *Card) Schedule() Schedule {
	return Schedule{
		Status:       c.Status,
		StepIndex:    c.StepIndex,
		EaseFactor:   c.EaseFactor,
		Interval:     c.Interval,
		Repetitions:  c.Repetitions,
		NextReviewAt: c.NextReviewAt,
	}
}

// ApplySchedule copies a scheduler-produced schedule onto the card and
// updates the UpdatedAt timestamp. The review service calls this inside
// its transaction; nothing else writes scheduling fields.
func (c *Card) ApplySchedule(s Schedule, now time.Time) {
	c.Status = s.Status
	c.StepIndex = s.StepIndex
	c.EaseFactor = s.EaseFactor
	c.Interval = s.Interval
	c.Repetitions = s.Repetitions
	c.NextReviewAt = s.NextReviewAt
	c.UpdatedAt = now
}
