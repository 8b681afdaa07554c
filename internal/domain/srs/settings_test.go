package srs

import (
	"errors"
	"testing"
)

func TestSettingsValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		mutate    func(*Settings)
		expectErr error
	}{
		{
			name:      "defaults are valid",
			mutate:    func(s *Settings) {},
			expectErr: nil,
		},
		{
			name:      "missing learning steps",
			mutate:    func(s *Settings) { s.LearningSteps = nil },
			expectErr: ErrNoLearningSteps,
		},
		{
			name:      "missing relearning steps",
			mutate:    func(s *Settings) { s.RelearningSteps = []int{} },
			expectErr: ErrNoRelearningSteps,
		},
		{
			name:      "zero learning step",
			mutate:    func(s *Settings) { s.LearningSteps = []int{1, 0} },
			expectErr: ErrNonPositiveStep,
		},
		{
			name:      "negative relearning step",
			mutate:    func(s *Settings) { s.RelearningSteps = []int{-10} },
			expectErr: ErrNonPositiveStep,
		},
		{
			name:      "zero graduating interval",
			mutate:    func(s *Settings) { s.GraduatingInterval = 0 },
			expectErr: ErrNonPositiveInterval,
		},
		{
			name:      "zero easy interval",
			mutate:    func(s *Settings) { s.EasyInterval = 0 },
			expectErr: ErrNonPositiveInterval,
		},
		{
			name:      "min ease at or below one",
			mutate:    func(s *Settings) { s.MinEase = 1.0 },
			expectErr: ErrInvalidMinEase,
		},
		{
			name: "starting ease below min ease",
			mutate: func(s *Settings) {
				s.StartingEase = 1.2
				s.MinEase = 1.3
			},
			expectErr: ErrInvalidEaseBounds,
		},
		{
			name:      "zero hard interval factor",
			mutate:    func(s *Settings) { s.HardIntervalFactor = 0 },
			expectErr: ErrInvalidFactor,
		},
		{
			name:      "zero interval modifier",
			mutate:    func(s *Settings) { s.IntervalModifier = 0 },
			expectErr: ErrInvalidFactor,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			settings := DefaultSettings()
			tc.mutate(settings)

			err := settings.Validate()
			if tc.expectErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.expectErr) {
				t.Errorf("got %v, want %v", err, tc.expectErr)
			}
		})
	}
}
