// Package main implements the entry point for the flashdeck API
// server, which schedules spaced repetition flashcards and records
// review history.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.run(ctx); err != nil {
		app.logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
