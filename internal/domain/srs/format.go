package srs

import (
	"fmt"

	"github.com/flashdeck/flashdeck-api/internal/domain"
)

// FormatInterval renders a schedule's interval as the human-readable
// string shown in review previews: step intervals render as "<n> min",
// one-day review intervals as "1 day", and longer ones as "<n> days".
func FormatInterval(s domain.Schedule) string {
	if s.Status.InSteps() {
		return fmt.Sprintf("%d min", s.Interval)
	}
	if s.Interval == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", s.Interval)
}
