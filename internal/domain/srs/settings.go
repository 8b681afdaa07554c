// Package srs implements the spaced repetition scheduler: a pure state
// machine over card statuses and review ratings in the SM-2/Anki style,
// with configurable learning steps, ease adjustments, and interval growth.
package srs

import "errors"

// Settings-specific validation errors
var (
	ErrNoLearningSteps     = errors.New("at least one learning step is required")
	ErrNoRelearningSteps   = errors.New("at least one relearning step is required")
	ErrNonPositiveStep     = errors.New("step intervals must be positive minutes")
	ErrNonPositiveInterval = errors.New("graduating and easy intervals must be positive days")
	ErrInvalidEaseBounds   = errors.New("starting ease must be at least the minimum ease")
	ErrInvalidMinEase      = errors.New("minimum ease must be greater than 1.0")
	ErrInvalidFactor       = errors.New("interval factors must be positive")
)

// Settings defines all configurable parameters for the scheduler.
// A Settings value is constructed once and treated as immutable for the
// lifetime of the scheduler built from it, so independent schedulers
// (e.g. per-deck tuning, or per-test instances) can coexist.
type Settings struct {
	// LearningSteps are the per-step intervals in minutes a card walks
	// through before graduating from learning.
	LearningSteps []int

	// RelearningSteps are the same for cards that lapsed out of review.
	RelearningSteps []int

	// GraduatingInterval is the interval in days assigned when a card
	// completes all learning/relearning steps via a good rating.
	GraduatingInterval int

	// EasyInterval is the interval in days assigned when easy is chosen
	// from the new, learning, or relearning status.
	EasyInterval int

	// StartingEase is the ease factor assigned to a brand-new card.
	StartingEase float64

	// MinEase is the floor below which the ease factor may never fall.
	MinEase float64

	// HardIntervalFactor multiplies the interval on a hard rating while
	// the card is in review.
	HardIntervalFactor float64

	// EasyBonus is the extra multiplier applied on top of the ease factor
	// when easy is chosen while the card is in review.
	EasyBonus float64

	// UseFuzz enables bounded random jitter on projected review dates for
	// intervals of at least MinFuzzDays, to avoid cards clustering on the
	// same day. Disable for deterministic tests.
	UseFuzz bool

	// IntervalModifier is a global multiplier applied to all review
	// intervals.
	IntervalModifier float64
}

// DefaultSettings returns the scheduler defaults: two learning steps of
// 1 and 10 minutes, a single 10 minute relearning step, graduation to a
// 1 day interval, a 4 day easy interval, and the classic SM-2 ease range.
func DefaultSettings() *Settings {
	return &Settings{
		LearningSteps:      []int{1, 10},
		RelearningSteps:    []int{10},
		GraduatingInterval: 1,
		EasyInterval:       4,
		StartingEase:       2.5,
		MinEase:            1.3,
		HardIntervalFactor: 1.2,
		EasyBonus:          1.3,
		UseFuzz:            true,
		IntervalModifier:   1.0,
	}
}

// Validate checks the settings for internal consistency.
func (s *Settings) Validate() error {
	if len(s.LearningSteps) == 0 {
		return ErrNoLearningSteps
	}
	if len(s.RelearningSteps) == 0 {
		return ErrNoRelearningSteps
	}
	for _, step := range s.LearningSteps {
		if step <= 0 {
			return ErrNonPositiveStep
		}
	}
	for _, step := range s.RelearningSteps {
		if step <= 0 {
			return ErrNonPositiveStep
		}
	}
	if s.GraduatingInterval <= 0 || s.EasyInterval <= 0 {
		return ErrNonPositiveInterval
	}
	if s.MinEase <= 1.0 {
		return ErrInvalidMinEase
	}
	if s.StartingEase < s.MinEase {
		return ErrInvalidEaseBounds
	}
	if s.HardIntervalFactor <= 0 || s.EasyBonus <= 0 || s.IntervalModifier <= 0 {
		return ErrInvalidFactor
	}
	return nil
}
