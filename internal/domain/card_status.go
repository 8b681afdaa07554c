package domain

// CardStatus represents where a card sits in the scheduling lifecycle.
// The four statuses are mutually exclusive and exhaustive.
type CardStatus string

// Possible card status values.
const (
	CardStatusNew        CardStatus = "new"
	CardStatusLearning   CardStatus = "learning"
	CardStatusReview     CardStatus = "review"
	CardStatusRelearning CardStatus = "relearning"
)

// IsValid reports whether the status is one of the four known values.
func (s CardStatus) IsValid() bool {
	switch s {
	case CardStatusNew, CardStatusLearning, CardStatusReview, CardStatusRelearning:
		return true
	default:
		return false
	}
}

// InSteps reports whether the status walks a step sequence, meaning the
// card's interval is expressed in minutes rather than days.
func (s CardStatus) InSteps() bool {
	return s == CardStatusLearning || s == CardStatusRelearning
}
