package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidReviewRating is returned when a review rating is not one of
	// again, hard, good, or easy.
	ErrInvalidReviewRating = errors.New("invalid review rating")

	// ErrInvalidCardStatus is returned when a card status is not valid.
	ErrInvalidCardStatus = errors.New("invalid card status")
)
