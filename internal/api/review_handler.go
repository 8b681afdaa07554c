// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/api/shared"
	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/platform/logger"
	"github.com/flashdeck/flashdeck-api/internal/redact"
	"github.com/flashdeck/flashdeck-api/internal/service/review"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	reviewService review.ReviewService
	logger        *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService review.ReviewService, logger *slog.Logger) *ReviewHandler {
	if reviewService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("reviewService cannot be nil for ReviewHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReviewHandler")
	}

	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger.With(slog.String("component", "review_handler")),
	}
}

// SubmitRatings handles POST /reviews requests.
// It applies a batch of rating submissions atomically and returns the
// resulting history entries in submission order.
func (h *ReviewHandler) SubmitRatings(w http.ResponseWriter, r *http.Request) {
	h.handleSubmission(w, r, false)
}

// SubmitCramRatings handles POST /reviews/cram requests.
// Cram reviews are recorded in history without touching card schedules.
func (h *ReviewHandler) SubmitCramRatings(w http.ResponseWriter, r *http.Request) {
	h.handleSubmission(w, r, true)
}

func (h *ReviewHandler) handleSubmission(w http.ResponseWriter, r *http.Request, cram bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SubmitRatingsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("request validation failed", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: ratings are required and each needs a card_id and a rating of again, hard, good, or easy")
		return
	}

	submissions := make([]review.RatingSubmission, 0, len(req.Ratings))
	for _, item := range req.Ratings {
		cardID, err := uuid.Parse(item.CardID)
		if err != nil {
			log.Warn("invalid card ID format", slog.String("card_id", item.CardID))
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card ID format")
			return
		}
		submissions = append(submissions, review.RatingSubmission{
			CardID: cardID,
			Rating: domain.ReviewRating(item.Rating),
		})
	}

	var reviewedAt time.Time
	if req.ReviewedAt != nil {
		reviewedAt = *req.ReviewedAt
	}

	var (
		records []*domain.ReviewRecord
		err     error
	)
	if cram {
		records, err = h.reviewService.SubmitCramReviews(r.Context(), submissions, reviewedAt)
	} else {
		records, err = h.reviewService.SubmitReviews(r.Context(), submissions, reviewedAt)
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("ratings submitted",
		slog.Int("count", len(records)),
		slog.Bool("cram", cram))
	shared.RespondWithJSON(w, r, http.StatusOK, recordsToResponse(records))
}

// GetDueCards handles GET /decks/{deckID}/reviews/due requests.
// New cards come first, then scheduled cards ascending by next review
// date. The optional limit query parameter caps the result.
func (h *ReviewHandler) GetDueCards(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	deckID, ok := parseUUIDParam(w, r, "deckID", log)
	if !ok {
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}

	cards, err := h.reviewService.GetDueReviews(r.Context(), deckID, limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("due cards retrieved",
		slog.String("deck_id", deckID.String()),
		slog.Int("count", len(cards)))
	shared.RespondWithJSON(w, r, http.StatusOK, cardsToResponse(cards))
}

// GetReviewPreview handles GET /cards/{cardID}/review-preview requests.
// The response maps each of the four ratings to the human-readable
// interval the card would receive.
func (h *ReviewHandler) GetReviewPreview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := parseUUIDParam(w, r, "cardID", log)
	if !ok {
		return
	}

	preview, err := h.reviewService.GetReviewPreview(r.Context(), cardID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, preview)
}

// GetStudyStreak handles GET /decks/{deckID}/streak requests.
func (h *ReviewHandler) GetStudyStreak(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	deckID, ok := parseUUIDParam(w, r, "deckID", log)
	if !ok {
		return
	}

	streak, err := h.reviewService.GetConsecutiveStudyDays(r.Context(), deckID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, streakToResponse(streak))
}

// parseUUIDParam extracts and parses a UUID path parameter, writing a
// 400 response and returning false when it is missing or malformed.
func parseUUIDParam(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	log *slog.Logger,
) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		log.Warn("path parameter missing", slog.String("param", name))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing "+name+" path parameter")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		log.Warn("invalid path parameter format",
			slog.String("param", name),
			slog.String("value", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}

	return id, true
}
