package model

import (
	"fmt"
	"time"
)

const (
	hoursPerDay = 24
	daysPerWeek = 7
)

// relativeTime renders a timestamp as a short "ago" string for list views.
func relativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < hoursPerDay*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < daysPerWeek*hoursPerDay*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/hoursPerDay))
	default:
		return fmt.Sprintf("%dw ago", int(diff.Hours()/hoursPerDay/daysPerWeek))
	}
}
