package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/mocks"
	"github.com/flashdeck/flashdeck-api/internal/service/review"
)

func testRouter(service review.ReviewService) http.Handler {
	handler := NewReviewHandler(service, slog.Default())
	r := chi.NewRouter()
	r.Post("/reviews", handler.SubmitRatings)
	r.Post("/reviews/cram", handler.SubmitCramRatings)
	r.Get("/decks/{deckID}/reviews/due", handler.GetDueCards)
	r.Get("/decks/{deckID}/streak", handler.GetStudyStreak)
	r.Get("/cards/{cardID}/review-preview", handler.GetReviewPreview)
	return r
}

func sampleRecord(t *testing.T, cardID uuid.UUID) *domain.ReviewRecord {
	t.Helper()
	record, err := domain.NewReviewRecord(
		cardID,
		domain.ReviewRatingGood,
		domain.Schedule{Status: domain.CardStatusLearning, EaseFactor: 2.5, Interval: 10},
		domain.CardStatusNew,
		time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("failed to create record: %v", err)
	}
	return record
}

func TestSubmitRatings(t *testing.T) {
	t.Parallel()
	cardID := uuid.New()
	record := sampleRecord(t, cardID)

	tests := []struct {
		name         string
		body         string
		service      *mocks.MockReviewService
		expectStatus int
	}{
		{
			name: "valid submission",
			body: `{"ratings":[{"card_id":"` + cardID.String() + `","rating":"good"}]}`,
			service: &mocks.MockReviewService{
				Records: []*domain.ReviewRecord{record},
			},
			expectStatus: http.StatusOK,
		},
		{
			name:         "malformed JSON",
			body:         `{"ratings":`,
			service:      &mocks.MockReviewService{},
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "empty ratings list",
			body:         `{"ratings":[]}`,
			service:      &mocks.MockReviewService{},
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "unknown rating value",
			body:         `{"ratings":[{"card_id":"` + cardID.String() + `","rating":"perfect"}]}`,
			service:      &mocks.MockReviewService{},
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "malformed card id",
			body:         `{"ratings":[{"card_id":"not-a-uuid","rating":"good"}]}`,
			service:      &mocks.MockReviewService{},
			expectStatus: http.StatusBadRequest,
		},
		{
			name: "missing card maps to 404",
			body: `{"ratings":[{"card_id":"` + cardID.String() + `","rating":"good"}]}`,
			service: &mocks.MockReviewService{
				Err: review.ErrCardNotFound,
			},
			expectStatus: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			router := testRouter(tc.service)

			req := httptest.NewRequest(
				http.MethodPost, "/reviews", bytes.NewBufferString(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tc.expectStatus {
				t.Errorf("status: got %d, want %d (body: %s)",
					rec.Code, tc.expectStatus, rec.Body.String())
			}

			if tc.expectStatus == http.StatusOK {
				var records []ReviewRecordResponse
				if err := json.NewDecoder(rec.Body).Decode(&records); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if len(records) != 1 {
					t.Fatalf("got %d records, want 1", len(records))
				}
				if records[0].CardID != cardID.String() {
					t.Errorf("cardID: got %s, want %s", records[0].CardID, cardID)
				}
			}
		})
	}
}

func TestSubmitRatingsForwardsReviewedAt(t *testing.T) {
	t.Parallel()
	cardID := uuid.New()
	reviewedAt := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

	var gotReviewedAt time.Time
	service := &mocks.MockReviewService{
		SubmitReviewsFn: func(ctx context.Context, submissions []review.RatingSubmission, at time.Time) ([]*domain.ReviewRecord, error) {
			gotReviewedAt = at
			return []*domain.ReviewRecord{}, nil
		},
	}
	router := testRouter(service)

	body := `{"ratings":[{"card_id":"` + cardID.String() + `","rating":"good"}],` +
		`"reviewed_at":"2026-03-01T09:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/reviews", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if !gotReviewedAt.Equal(reviewedAt) {
		t.Errorf("reviewedAt: got %v, want %v", gotReviewedAt, reviewedAt)
	}
}

func TestGetDueCards(t *testing.T) {
	t.Parallel()
	deckID := uuid.New()

	card, err := domain.NewCard(deckID, json.RawMessage(`{"front":"q","back":"a"}`), 2.5)
	if err != nil {
		t.Fatalf("failed to create card: %v", err)
	}

	var gotLimit int
	service := &mocks.MockReviewService{
		GetDueReviewsFn: func(ctx context.Context, id uuid.UUID, limit int) ([]*domain.Card, error) {
			gotLimit = limit
			return []*domain.Card{card}, nil
		},
	}
	router := testRouter(service)

	req := httptest.NewRequest(
		http.MethodGet, "/decks/"+deckID.String()+"/reviews/due?limit=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	if gotLimit != 5 {
		t.Errorf("limit: got %d, want 5", gotLimit)
	}

	var cards []CardResponse
	if err := json.NewDecoder(rec.Body).Decode(&cards); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(cards) != 1 || cards[0].ID != card.ID.String() {
		t.Errorf("unexpected due cards response: %+v", cards)
	}
}

func TestGetDueCardsRejectsBadInput(t *testing.T) {
	t.Parallel()
	service := &mocks.MockReviewService{}
	router := testRouter(service)

	for _, path := range []string{
		"/decks/not-a-uuid/reviews/due",
		"/decks/" + uuid.NewString() + "/reviews/due?limit=nope",
		"/decks/" + uuid.NewString() + "/reviews/due?limit=-1",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status got %d, want 400", path, rec.Code)
		}
	}
}

func TestGetReviewPreviewResponse(t *testing.T) {
	t.Parallel()
	cardID := uuid.New()

	service := &mocks.MockReviewService{
		Preview: map[domain.ReviewRating]string{
			domain.ReviewRatingAgain: "10 min",
			domain.ReviewRatingHard:  "12 days",
			domain.ReviewRatingGood:  "25 days",
			domain.ReviewRatingEasy:  "32 days",
		},
	}
	router := testRouter(service)

	req := httptest.NewRequest(
		http.MethodGet, "/cards/"+cardID.String()+"/review-preview", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var preview map[domain.ReviewRating]string
	if err := json.NewDecoder(rec.Body).Decode(&preview); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(preview) != 4 {
		t.Errorf("got %d preview entries, want 4", len(preview))
	}
	if preview[domain.ReviewRatingGood] != "25 days" {
		t.Errorf("preview[good]: got %q, want %q", preview[domain.ReviewRatingGood], "25 days")
	}
}

func TestGetStudyStreakResponse(t *testing.T) {
	t.Parallel()
	deckID := uuid.New()
	last := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	service := &mocks.MockReviewService{
		Streak: &review.StudyStreak{
			ConsecutiveDays: 3,
			StreakStartDate: &[]time.Time{last.AddDate(0, 0, -2)}[0],
			LastStudyDate:   &last,
		},
	}
	router := testRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/decks/"+deckID.String()+"/streak", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var streak StreakResponse
	if err := json.NewDecoder(rec.Body).Decode(&streak); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if streak.ConsecutiveDays != 3 {
		t.Errorf("consecutiveDays: got %d, want 3", streak.ConsecutiveDays)
	}
	if streak.LastStudyDate == nil || !streak.LastStudyDate.Equal(last) {
		t.Errorf("lastStudyDate: got %v, want %v", streak.LastStudyDate, last)
	}
}
