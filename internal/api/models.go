package api

import (
	"encoding/json"
	"time"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/service/review"
)

// RatingItem is one card/rating pair inside a submission request.
type RatingItem struct {
	CardID string `json:"card_id"  validate:"required,uuid"`
	Rating string `json:"rating"   validate:"required,oneof=again hard good easy"`
}

// SubmitRatingsRequest is the request body for rating submissions.
// ReviewedAt is optional; when omitted the reviews are stamped "now".
type SubmitRatingsRequest struct {
	Ratings    []RatingItem `json:"ratings"     validate:"required,min=1,dive"`
	ReviewedAt *time.Time   `json:"reviewed_at" validate:"omitempty"`
}

// ReviewRecordResponse is one history entry in a submission response,
// in the same order as the submitted ratings.
type ReviewRecordResponse struct {
	ID             string     `json:"id"`
	CardID         string     `json:"card_id"`
	Rating         string     `json:"rating"`
	Repetitions    int        `json:"repetitions"`
	Interval       int        `json:"interval"`
	EaseFactor     float64    `json:"ease_factor"`
	NextReviewAt   *time.Time `json:"next_review_at"`
	ReviewedAt     time.Time  `json:"reviewed_at"`
	PreviousStatus string     `json:"previous_status"`
	NewStatus      string     `json:"new_status"`
}

// CardResponse is the card projection returned by the due queue.
type CardResponse struct {
	ID           string          `json:"id"`
	DeckID       string          `json:"deck_id"`
	Content      json.RawMessage `json:"content"`
	Status       string          `json:"status"`
	StepIndex    int             `json:"step_index"`
	EaseFactor   float64         `json:"ease_factor"`
	Interval     int             `json:"interval"`
	Repetitions  int             `json:"repetitions"`
	NextReviewAt *time.Time      `json:"next_review_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StreakResponse describes a deck's consecutive-study-day streak.
type StreakResponse struct {
	ConsecutiveDays int        `json:"consecutive_days"`
	StreakStartDate *time.Time `json:"streak_start_date"`
	LastStudyDate   *time.Time `json:"last_study_date"`
}

// CreateDeckRequest is the request body for deck creation.
type CreateDeckRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// DeckResponse is the deck projection returned by deck endpoints.
type DeckResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCardRequest is the request body for card creation.
type CreateCardRequest struct {
	Content json.RawMessage `json:"content" validate:"required"`
}

func recordToResponse(record *domain.ReviewRecord) ReviewRecordResponse {
	return ReviewRecordResponse{
		ID:             record.ID.String(),
		CardID:         record.CardID.String(),
		Rating:         string(record.Rating),
		Repetitions:    record.Repetitions,
		Interval:       record.Interval,
		EaseFactor:     record.EaseFactor,
		NextReviewAt:   record.NextReviewAt,
		ReviewedAt:     record.ReviewedAt,
		PreviousStatus: string(record.PreviousStatus),
		NewStatus:      string(record.NewStatus),
	}
}

func recordsToResponse(records []*domain.ReviewRecord) []ReviewRecordResponse {
	out := make([]ReviewRecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, recordToResponse(record))
	}
	return out
}

func cardToResponse(card *domain.Card) CardResponse {
	return CardResponse{
		ID:           card.ID.String(),
		DeckID:       card.DeckID.String(),
		Content:      card.Content,
		Status:       string(card.Status),
		StepIndex:    card.StepIndex,
		EaseFactor:   card.EaseFactor,
		Interval:     card.Interval,
		Repetitions:  card.Repetitions,
		NextReviewAt: card.NextReviewAt,
		CreatedAt:    card.CreatedAt,
		UpdatedAt:    card.UpdatedAt,
	}
}

func cardsToResponse(cards []*domain.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, cardToResponse(card))
	}
	return out
}

func streakToResponse(streak *review.StudyStreak) StreakResponse {
	return StreakResponse{
		ConsecutiveDays: streak.ConsecutiveDays,
		StreakStartDate: streak.StreakStartDate,
		LastStudyDate:   streak.LastStudyDate,
	}
}

func deckToResponse(deck *domain.Deck) DeckResponse {
	return DeckResponse{
		ID:        deck.ID.String(),
		Name:      deck.Name,
		CreatedAt: deck.CreatedAt,
		UpdatedAt: deck.UpdatedAt,
	}
}
