package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/flashdeck/flashdeck-api/internal/service/review"
	"github.com/flashdeck/flashdeck-api/internal/service/stats"
	"github.com/flashdeck/flashdeck-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		err          error
		expectStatus int
	}{
		{
			name:         "card not found",
			err:          review.ErrCardNotFound,
			expectStatus: http.StatusNotFound,
		},
		{
			name:         "deck not found",
			err:          review.ErrDeckNotFound,
			expectStatus: http.StatusNotFound,
		},
		{
			name:         "stats deck not found",
			err:          stats.ErrDeckNotFound,
			expectStatus: http.StatusNotFound,
		},
		{
			name:         "wrapped not found",
			err:          fmt.Errorf("lookup: %w", store.ErrCardNotFound),
			expectStatus: http.StatusNotFound,
		},
		{
			name:         "duplicate entity",
			err:          store.ErrDuplicate,
			expectStatus: http.StatusConflict,
		},
		{
			name:         "invalid rating",
			err:          review.ErrInvalidRating,
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "invalid entity",
			err:          store.ErrInvalidEntity,
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "unknown error",
			err:          errors.New("boom"),
			expectStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := MapErrorToStatusCode(tc.err); got != tc.expectStatus {
				t.Errorf("got %d, want %d", got, tc.expectStatus)
			}
		})
	}
}

func TestGetSafeErrorMessageNeverLeaksDetails(t *testing.T) {
	t.Parallel()

	internal := errors.New("pq: connection to db.internal:5432 refused")
	if got := GetSafeErrorMessage(internal); got != "An unexpected error occurred" {
		t.Errorf("got %q, want generic message", got)
	}

	if got := GetSafeErrorMessage(nil); got != "An unexpected error occurred" {
		t.Errorf("got %q, want generic message for nil", got)
	}

	if got := GetSafeErrorMessage(review.ErrCardNotFound); got != "Card not found" {
		t.Errorf("got %q, want %q", got, "Card not found")
	}
}
