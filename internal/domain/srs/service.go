package srs

import (
	"errors"
	"fmt"
	"time"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// Common errors
var (
	ErrInvalidRating   = errors.New("invalid review rating")
	ErrInvalidSettings = errors.New("invalid scheduler settings")
)

// Service defines the interface for scheduler operations.
//
// Implementations are stateless and safe for concurrent use: every call
// computes from its arguments only, so the same schedule can be fed
// through CalculateNext any number of times for what-if previews.
type Service interface {
	// CalculateNext computes a card's next scheduling state for a rating,
	// including the projected next review date relative to now. The input
	// schedule is never modified.
	CalculateNext(
		schedule domain.Schedule,
		rating domain.ReviewRating,
		now time.Time,
	) (domain.Schedule, error)

	// Settings returns the immutable settings the service was built with.
	Settings() *Settings
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	settings *Settings
}

// NewDefaultService creates a scheduler service with default settings.
func NewDefaultService() Service {
	return &defaultService{settings: DefaultSettings()}
}

// NewService creates a scheduler service with the given settings.
// Returns ErrInvalidSettings (wrapped with the specific failure) if the
// settings are inconsistent.
func NewService(settings *Settings) (Service, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return &defaultService{settings: settings}, nil
}

// CalculateNext implements the Service interface.
func (s *defaultService) CalculateNext(
	schedule domain.Schedule,
	rating domain.ReviewRating,
	now time.Time,
) (domain.Schedule, error) {
	if !rating.IsValid() {
		return domain.Schedule{}, ErrInvalidRating
	}

	next := nextSchedule(schedule, rating, s.settings)
	due := projectNextReview(next, now, s.settings)
	next.NextReviewAt = &due

	return next, nil
}

// Settings implements the Service interface.
func (s *defaultService) Settings() *Settings {
	return s.settings
}
