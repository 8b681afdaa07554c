package review

import (
	"time"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// computeStreak derives the consecutive-study-day streak from review
// history. A streak is a run of calendar days (UTC) with at least one
// review each, ending today or yesterday relative to now. History whose
// most recent day is older than yesterday yields a zero count, though
// LastStudyDate is still reported.
func computeStreak(records []*domain.ReviewRecord, now time.Time) *StudyStreak {
	if len(records) == 0 {
		return &StudyStreak{ConsecutiveDays: 0}
	}

	// Collect the distinct calendar days on which reviews happened.
	daySet := make(map[time.Time]struct{}, len(records))
	var last time.Time
	for _, record := range records {
		day := toCalendarDay(record.ReviewedAt)
		daySet[day] = struct{}{}
		if day.After(last) {
			last = day
		}
	}

	lastStudyDate := last
	today := toCalendarDay(now)
	yesterday := today.AddDate(0, 0, -1)

	if last.Before(yesterday) {
		return &StudyStreak{
			ConsecutiveDays: 0,
			LastStudyDate:   &lastStudyDate,
		}
	}

	// Walk backwards day by day from the most recent study day.
	days := 0
	cursor := last
	for {
		if _, ok := daySet[cursor]; !ok {
			break
		}
		days++
		cursor = cursor.AddDate(0, 0, -1)
	}

	start := last.AddDate(0, 0, -(days - 1))
	return &StudyStreak{
		ConsecutiveDays: days,
		StreakStartDate: &start,
		LastStudyDate:   &lastStudyDate,
	}
}

// toCalendarDay truncates a timestamp to midnight UTC.
func toCalendarDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
