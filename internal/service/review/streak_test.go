package review

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

func recordOn(t time.Time) *domain.ReviewRecord {
	return &domain.ReviewRecord{
		ID:         uuid.New(),
		CardID:     uuid.New(),
		Rating:     domain.ReviewRatingGood,
		ReviewedAt: t,
	}
}

func TestComputeStreak(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)
	day := func(offset int) time.Time {
		return now.AddDate(0, 0, -offset)
	}

	testCases := []struct {
		name       string
		reviewedAt []time.Time
		expectDays int
		expectLast *time.Time
	}{
		{
			name:       "no history",
			reviewedAt: nil,
			expectDays: 0,
		},
		{
			name:       "three consecutive days ending today",
			reviewedAt: []time.Time{day(0), day(1), day(2)},
			expectDays: 3,
		},
		{
			name:       "streak ending yesterday still counts",
			reviewedAt: []time.Time{day(1), day(2)},
			expectDays: 2,
		},
		{
			name:       "last study older than yesterday breaks the streak",
			reviewedAt: []time.Time{day(3), day(4)},
			expectDays: 0,
		},
		{
			name:       "gap in the middle limits the run",
			reviewedAt: []time.Time{day(0), day(1), day(3), day(4)},
			expectDays: 2,
		},
		{
			name: "multiple reviews on one day count once",
			reviewedAt: []time.Time{
				day(0), day(0).Add(2 * time.Hour), day(1),
			},
			expectDays: 2,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var records []*domain.ReviewRecord
			for _, reviewedAt := range tc.reviewedAt {
				records = append(records, recordOn(reviewedAt))
			}

			streak := computeStreak(records, now)

			if streak.ConsecutiveDays != tc.expectDays {
				t.Errorf("consecutiveDays: got %d, want %d",
					streak.ConsecutiveDays, tc.expectDays)
			}

			if len(tc.reviewedAt) == 0 {
				if streak.LastStudyDate != nil {
					t.Errorf("lastStudyDate: got %v, want nil", streak.LastStudyDate)
				}
				if streak.StreakStartDate != nil {
					t.Errorf("streakStartDate: got %v, want nil", streak.StreakStartDate)
				}
				return
			}

			if streak.LastStudyDate == nil {
				t.Fatal("lastStudyDate is nil, want most recent study day")
			}
		})
	}
}

func TestComputeStreakDates(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

	records := []*domain.ReviewRecord{
		recordOn(now),
		recordOn(now.AddDate(0, 0, -1)),
		recordOn(now.AddDate(0, 0, -2)),
	}

	streak := computeStreak(records, now)

	wantStart := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)
	wantLast := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	if streak.StreakStartDate == nil || !streak.StreakStartDate.Equal(wantStart) {
		t.Errorf("streakStartDate: got %v, want %v", streak.StreakStartDate, wantStart)
	}
	if streak.LastStudyDate == nil || !streak.LastStudyDate.Equal(wantLast) {
		t.Errorf("lastStudyDate: got %v, want %v", streak.LastStudyDate, wantLast)
	}
}

func TestComputeStreakBrokenStillReportsLastStudyDate(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

	records := []*domain.ReviewRecord{recordOn(now.AddDate(0, 0, -3))}
	streak := computeStreak(records, now)

	if streak.ConsecutiveDays != 0 {
		t.Errorf("consecutiveDays: got %d, want 0", streak.ConsecutiveDays)
	}
	wantLast := time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC)
	if streak.LastStudyDate == nil || !streak.LastStudyDate.Equal(wantLast) {
		t.Errorf("lastStudyDate: got %v, want %v", streak.LastStudyDate, wantLast)
	}
	if streak.StreakStartDate != nil {
		t.Errorf("streakStartDate: got %v, want nil for a broken streak", streak.StreakStartDate)
	}
}
