package domain

import "testing"

func TestReviewRatingIsValid(t *testing.T) {
	t.Parallel()

	for _, rating := range AllReviewRatings {
		if !rating.IsValid() {
			t.Errorf("rating %q should be valid", rating)
		}
	}

	for _, invalid := range []ReviewRating{"", "perfect", "AGAIN", "ok"} {
		if invalid.IsValid() {
			t.Errorf("rating %q should be invalid", invalid)
		}
	}
}

func TestReviewRatingIsCorrect(t *testing.T) {
	t.Parallel()

	if ReviewRatingAgain.IsCorrect() {
		t.Error("again should not count as correct")
	}
	for _, rating := range []ReviewRating{ReviewRatingHard, ReviewRatingGood, ReviewRatingEasy} {
		if !rating.IsCorrect() {
			t.Errorf("rating %q should count as correct", rating)
		}
	}
}

func TestCardStatusIsValid(t *testing.T) {
	t.Parallel()

	valid := []CardStatus{CardStatusNew, CardStatusLearning, CardStatusReview, CardStatusRelearning}
	for _, status := range valid {
		if !status.IsValid() {
			t.Errorf("status %q should be valid", status)
		}
	}

	for _, invalid := range []CardStatus{"", "suspended", "NEW"} {
		if invalid.IsValid() {
			t.Errorf("status %q should be invalid", invalid)
		}
	}
}

func TestCardStatusInSteps(t *testing.T) {
	t.Parallel()

	if !CardStatusLearning.InSteps() || !CardStatusRelearning.InSteps() {
		t.Error("learning and relearning should be step statuses")
	}
	if CardStatusNew.InSteps() || CardStatusReview.InSteps() {
		t.Error("new and review should not be step statuses")
	}
}
