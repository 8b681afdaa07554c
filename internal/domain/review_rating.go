package domain

// ReviewRating represents the recall quality a learner reports for a card.
type ReviewRating string

// Possible review rating values.
const (
	ReviewRatingAgain ReviewRating = "again"
	ReviewRatingHard  ReviewRating = "hard"
	ReviewRatingGood  ReviewRating = "good"
	ReviewRatingEasy  ReviewRating = "easy"
)

// AllReviewRatings lists every valid rating in presentation order.
// Used by preview generation, which must produce one entry per rating.
var AllReviewRatings = []ReviewRating{
	ReviewRatingAgain,
	ReviewRatingHard,
	ReviewRatingGood,
	ReviewRatingEasy,
}

// IsValid reports whether the rating is one of the four known values.
func (r ReviewRating) IsValid() bool {
	switch r {
	case ReviewRatingAgain, ReviewRatingHard, ReviewRatingGood, ReviewRatingEasy:
		return true
	default:
		return false
	}
}

// IsCorrect reports whether the rating counts as a successful recall.
// Everything except "again" is treated as correct for statistics.
func (r ReviewRating) IsCorrect() bool {
	return r != ReviewRatingAgain
}
