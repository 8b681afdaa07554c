package api

import (
	"log/slog"
	"net/http"

	"github.com/flashdeck/flashdeck-api/internal/api/shared"
	"github.com/flashdeck/flashdeck-api/internal/platform/logger"
	"github.com/flashdeck/flashdeck-api/internal/service/stats"
)

// StatsHandler handles statistics-related HTTP requests
type StatsHandler struct {
	statsService stats.StatsService
	logger       *slog.Logger
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService stats.StatsService, logger *slog.Logger) *StatsHandler {
	if statsService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("statsService cannot be nil for StatsHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for StatsHandler")
	}

	return &StatsHandler{
		statsService: statsService,
		logger:       logger.With(slog.String("component", "stats_handler")),
	}
}

// GetDeckStatistics handles GET /decks/{deckID}/stats requests.
func (h *StatsHandler) GetDeckStatistics(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	deckID, ok := parseUUIDParam(w, r, "deckID", log)
	if !ok {
		return
	}

	statistics, err := h.statsService.GetDeckStatistics(r.Context(), deckID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("deck statistics retrieved",
		slog.String("deck_id", deckID.String()),
		slog.Int("total_reviews", statistics.TotalReviews))
	shared.RespondWithJSON(w, r, http.StatusOK, statistics)
}
