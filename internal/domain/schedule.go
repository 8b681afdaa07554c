package domain

import "time"

// Schedule is the scheduling state of a card: the subset of card fields
// that the spaced repetition algorithm reads and produces. It is a value
// type so the scheduler can return a new Schedule without touching the
// card it was derived from.
//
// Interval is expressed in minutes while Status is learning or relearning,
// and in days while Status is review. It is 0 for a card that has never
// been scheduled.
type Schedule struct {
	Status       CardStatus
	StepIndex    int
	EaseFactor   float64
	Interval     int
	Repetitions  int
	NextReviewAt *time.Time
}

// NewSchedule returns the scheduling state of a brand-new card.
func NewSchedule(startingEase float64) Schedule {
	return Schedule{
		Status:     CardStatusNew,
		StepIndex:  0,
		EaseFactor: startingEase,
		Interval:   0,
	}
}
