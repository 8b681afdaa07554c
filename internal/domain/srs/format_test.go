package srs

import (
	"regexp"
	"testing"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

func TestFormatInterval(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		schedule domain.Schedule
		expected string
	}{
		{
			name:     "learning step renders as minutes",
			schedule: domain.Schedule{Status: domain.CardStatusLearning, Interval: 10},
			expected: "10 min",
		},
		{
			name:     "relearning step renders as minutes",
			schedule: domain.Schedule{Status: domain.CardStatusRelearning, Interval: 1},
			expected: "1 min",
		},
		{
			name:     "one day review interval is singular",
			schedule: domain.Schedule{Status: domain.CardStatusReview, Interval: 1},
			expected: "1 day",
		},
		{
			name:     "multi day review interval is plural",
			schedule: domain.Schedule{Status: domain.CardStatusReview, Interval: 25},
			expected: "25 days",
		},
	}

	// Preview strings must match this shape exactly for API consumers.
	shape := regexp.MustCompile(`^\d+ (min|day|days)$`)

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := FormatInterval(tc.schedule)
			if got != tc.expected {
				t.Errorf("got %q, want %q", got, tc.expected)
			}
			if !shape.MatchString(got) {
				t.Errorf("%q does not match the preview string shape", got)
			}
		})
	}
}
