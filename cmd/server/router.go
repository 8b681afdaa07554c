package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/flashdeck/flashdeck-api/internal/api"
	apiMiddleware "github.com/flashdeck/flashdeck-api/internal/api/middleware"
)

// setupRouter builds the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	reviewHandler := api.NewReviewHandler(app.reviewService, app.logger)
	statsHandler := api.NewStatsHandler(app.statsService, app.logger)
	deckHandler := api.NewDeckHandler(app.deckStore, app.cardStore, app.scheduler, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Rating submission
		r.Post("/reviews", reviewHandler.SubmitRatings)
		r.Post("/reviews/cram", reviewHandler.SubmitCramRatings)

		// Deck management and deck-scoped queries
		r.Post("/decks", deckHandler.CreateDeck)
		r.Get("/decks/{deckID}", deckHandler.GetDeck)
		r.Delete("/decks/{deckID}", deckHandler.DeleteDeck)
		r.Post("/decks/{deckID}/cards", deckHandler.CreateCard)
		r.Get("/decks/{deckID}/reviews/due", reviewHandler.GetDueCards)
		r.Get("/decks/{deckID}/streak", reviewHandler.GetStudyStreak)
		r.Get("/decks/{deckID}/stats", statsHandler.GetDeckStatistics)

		// Card-scoped operations
		r.Get("/cards/{cardID}/review-preview", reviewHandler.GetReviewPreview)
		r.Delete("/cards/{cardID}", deckHandler.DeleteCard)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
