package priority

import (
	"fmt"
	"time"
)

// DeadlineLabel formats a deadline relative to now for card badges
func DeadlineLabel(now, deadline time.Time) string {
	days := DaysUntil(now, deadline)
	switch {
	case days < -1:
		return fmt.Sprintf("overdue by %d days", -days)
	case days == -1:
		return "overdue by 1 day"
	case days == 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	case days <= 7:
		return fmt.Sprintf("due in %d days", days)
	}

	d := deadline.In(now.Location())
	if d.Year() == now.Year() {
		return d.Format("Jan 2")
	}
	return d.Format("Jan 2, 2006")
}
