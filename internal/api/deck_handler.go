package api

import (
	"log/slog"
	"net/http"

	"github.com/flashdeck/flashdeck-api/internal/api/shared"
	"github.com/flashdeck/flashdeck-api/internal/domain"
	"github.com/flashdeck/flashdeck-api/internal/domain/srs"
	"github.com/flashdeck/flashdeck-api/internal/platform/logger"
	"github.com/flashdeck/flashdeck-api/internal/redact"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

// DeckHandler handles deck and card management HTTP requests
type DeckHandler struct {
	deckStore store.DeckStore
	cardStore store.CardStore
	scheduler srs.Service
	logger    *slog.Logger
}

// NewDeckHandler creates a new DeckHandler
func NewDeckHandler(
	deckStore store.DeckStore,
	cardStore store.CardStore,
	scheduler srs.Service,
	logger *slog.Logger,
) *DeckHandler {
	if deckStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("deckStore cannot be nil for DeckHandler")
	}
	if cardStore == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cardStore cannot be nil for DeckHandler")
	}
	if scheduler == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("scheduler cannot be nil for DeckHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DeckHandler")
	}

	return &DeckHandler{
		deckStore: deckStore,
		cardStore: cardStore,
		scheduler: scheduler,
		logger:    logger.With(slog.String("component", "deck_handler")),
	}
}

// CreateDeck handles POST /decks requests.
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateDeckRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("request validation failed", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: name is required")
		return
	}

	deck, err := domain.NewDeck(req.Name)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid deck data")
		return
	}

	if err := h.deckStore.Create(r.Context(), deck); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("deck created", slog.String("deck_id", deck.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, deckToResponse(deck))
}

// GetDeck handles GET /decks/{deckID} requests.
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	deckID, ok := parseUUIDParam(w, r, "deckID", log)
	if !ok {
		return
	}

	deck, err := h.deckStore.GetByID(r.Context(), deckID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deckToResponse(deck))
}

// DeleteDeck handles DELETE /decks/{deckID} requests.
// The deck's cards and their review history go with it.
func (h *DeckHandler) DeleteDeck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	deckID, ok := parseUUIDParam(w, r, "deckID", log)
	if !ok {
		return
	}

	if err := h.deckStore.Delete(r.Context(), deckID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("deck deleted", slog.String("deck_id", deckID.String()))
	w.WriteHeader(http.StatusNoContent)
}

// CreateCard handles POST /decks/{deckID}/cards requests.
// New cards start unscheduled with the configured starting ease.
func (h *DeckHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	deckID, ok := parseUUIDParam(w, r, "deckID", log)
	if !ok {
		return
	}

	var req CreateCardRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("request validation failed", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request: content is required")
		return
	}

	// Reject cards aimed at a deck that does not exist.
	if _, err := h.deckStore.GetByID(r.Context(), deckID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	card, err := domain.NewCard(deckID, req.Content, h.scheduler.Settings().StartingEase)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid card data")
		return
	}

	if err := h.cardStore.Create(r.Context(), card); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("deck_id", deckID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(card))
}

// DeleteCard handles DELETE /cards/{cardID} requests.
// The card's review history goes with it.
func (h *DeckHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	cardID, ok := parseUUIDParam(w, r, "cardID", log)
	if !ok {
		return
	}

	if err := h.cardStore.Delete(r.Context(), cardID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("card deleted", slog.String("card_id", cardID.String()))
	w.WriteHeader(http.StatusNoContent)
}
