package srs

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// Ease factor adjustments applied while a card is in review.
const (
	lapseEasePenalty = 0.20
	hardEasePenalty  = 0.15
	easyEaseBonus    = 0.15
)

// MinFuzzDays is the smallest review interval, in days, that receives
// fuzz. Shorter intervals are projected exactly.
const MinFuzzDays = 3

// fuzzFraction bounds the jitter applied to fuzzed review dates to ±5%
// of the interval.
const fuzzFraction = 0.05

// nextSchedule computes the card's next scheduling state for a rating.
// It is pure: the input schedule is a value and is never modified, and
// the returned schedule carries no projected date (see projectNextReview).
//
// Every (status, rating) pair is defined. An unrecognized rating or
// status is a programming error, not user input — callers validate
// ratings first — so this function panics rather than guessing.
func nextSchedule(s domain.Schedule, rating domain.ReviewRating, settings *Settings) domain.Schedule {
	next := s
	next.Repetitions = s.Repetitions + 1
	next.NextReviewAt = nil

	switch s.Status {
	case domain.CardStatusNew:
		switch rating {
		case domain.ReviewRatingAgain, domain.ReviewRatingHard:
			next.Status = domain.CardStatusLearning
			next.StepIndex = 0
			next.Interval = settings.LearningSteps[0]
		case domain.ReviewRatingGood:
			// A new card sits at step 0 of the learning sequence; good
			// completes that step and advances (or graduates when there
			// is only one step).
			next.Status = domain.CardStatusLearning
			next = advanceSteps(next, rating, settings.LearningSteps, settings)
		case domain.ReviewRatingEasy:
			next = graduate(next, settings.EasyInterval)
		default:
			panic(fmt.Sprintf("srs: unknown review rating %q", rating))
		}

	case domain.CardStatusLearning:
		next = advanceSteps(next, rating, settings.LearningSteps, settings)

	case domain.CardStatusRelearning:
		next = advanceSteps(next, rating, settings.RelearningSteps, settings)

	case domain.CardStatusReview:
		switch rating {
		case domain.ReviewRatingAgain:
			next.Status = domain.CardStatusRelearning
			next.StepIndex = 0
			next.Interval = settings.RelearningSteps[0]
			next.EaseFactor = clampEase(s.EaseFactor-lapseEasePenalty, settings.MinEase)
		case domain.ReviewRatingHard:
			next.Interval = scaleInterval(s.Interval, settings.HardIntervalFactor, settings)
			next.EaseFactor = clampEase(s.EaseFactor-hardEasePenalty, settings.MinEase)
		case domain.ReviewRatingGood:
			next.Interval = scaleInterval(s.Interval, s.EaseFactor, settings)
		case domain.ReviewRatingEasy:
			next.Interval = scaleInterval(s.Interval, s.EaseFactor*settings.EasyBonus, settings)
			next.EaseFactor = s.EaseFactor + easyEaseBonus
		default:
			panic(fmt.Sprintf("srs: unknown review rating %q", rating))
		}

	default:
		panic(fmt.Sprintf("srs: unknown card status %q", s.Status))
	}

	return next
}

// advanceSteps applies a rating to a card that is walking a step
// sequence (learning or relearning).
//
// A step index at or past the end of the sequence is treated as having
// completed the steps: a good rating graduates instead of indexing out
// of bounds.
func advanceSteps(next domain.Schedule, rating domain.ReviewRating, steps []int, settings *Settings) domain.Schedule {
	switch rating {
	case domain.ReviewRatingAgain:
		next.StepIndex = 0
		next.Interval = steps[0]
	case domain.ReviewRatingHard:
		if next.StepIndex >= len(steps) {
			next.StepIndex = len(steps) - 1
		}
		next.Interval = steps[next.StepIndex]
	case domain.ReviewRatingGood:
		next.StepIndex++
		if next.StepIndex >= len(steps) {
			return graduate(next, settings.GraduatingInterval)
		}
		next.Interval = steps[next.StepIndex]
	case domain.ReviewRatingEasy:
		return graduate(next, settings.EasyInterval)
	default:
		panic(fmt.Sprintf("srs: unknown review rating %q", rating))
	}
	return next
}

// graduate moves a card into review with the given interval in days.
// The step index resets whenever a card enters review.
func graduate(next domain.Schedule, intervalDays int) domain.Schedule {
	next.Status = domain.CardStatusReview
	next.StepIndex = 0
	next.Interval = intervalDays
	return next
}

// scaleInterval grows a review interval by the given factor and the
// global interval modifier, rounding toward zero and clamping to a
// minimum of one day.
func scaleInterval(interval int, factor float64, settings *Settings) int {
	scaled := int(float64(interval) * factor * settings.IntervalModifier)
	if scaled < 1 {
		return 1
	}
	return scaled
}

// clampEase enforces the configured ease factor floor.
func clampEase(ease, minEase float64) float64 {
	if ease < minEase {
		return minEase
	}
	return ease
}

// projectNextReview converts a computed schedule into an actual review
// date relative to now. Step intervals are minutes; review intervals are
// days. Review intervals of at least MinFuzzDays receive bounded random
// jitter when fuzz is enabled, so cards reviewed together do not stay
// clustered on the same future day.
func projectNextReview(s domain.Schedule, now time.Time, settings *Settings) time.Time {
	if s.Status.InSteps() {
		return now.Add(time.Duration(s.Interval) * time.Minute)
	}

	due := now.AddDate(0, 0, s.Interval)
	if settings.UseFuzz && s.Interval >= MinFuzzDays {
		due = due.Add(fuzzOffset(s.Interval))
	}
	return due
}

// fuzzOffset returns a uniformly distributed offset in
// [-fuzzFraction, +fuzzFraction] of the interval duration.
func fuzzOffset(intervalDays int) time.Duration {
	window := int64(float64(intervalDays) * 24 * float64(time.Hour) * fuzzFraction)
	if window <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(2*window+1) - window)
}
