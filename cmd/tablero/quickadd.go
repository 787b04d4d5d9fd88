package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dori/tablero/internal/model"
)

// quickAdd is the result of parsing a one line description such as
// "Rebrand client:acme !high due:friday".
type quickAdd struct {
	Title    string
	Client   string
	Priority model.Priority
	Deadline *time.Time
}

// parseQuickAdd splits inline tokens from the title. Unknown tokens stay in
// the title. Priorities are checked with valid, which differs for projects
// and tasks.
func parseQuickAdd(text string, now time.Time, valid func(model.Priority) bool) (quickAdd, error) {
	var q quickAdd
	var titleParts []string

	for _, word := range strings.Fields(text) {
		lower := strings.ToLower(word)
		switch {
		// Priority (!low, !high, !auto...)
		case strings.HasPrefix(word, "!") && len(word) > 1:
			p, ok := model.ParsePriority(strings.TrimPrefix(lower, "!"))
			if !ok {
				titleParts = append(titleParts, word)
				continue
			}
			if !valid(p) {
				return q, fmt.Errorf("priority %s is not allowed here", p)
			}
			q.Priority = p

		// Due date (due:tomorrow, due:friday, due:2026-01-15)
		case strings.HasPrefix(lower, "due:"):
			d := parseNaturalDate(strings.TrimPrefix(lower, "due:"), now)
			if d == nil {
				return q, fmt.Errorf("cannot understand due date %q", word)
			}
			q.Deadline = d

		case strings.HasPrefix(lower, "client:"):
			q.Client = strings.ReplaceAll(word[len("client:"):], "_", " ")

		default:
			titleParts = append(titleParts, word)
		}
	}

	q.Title = strings.Join(titleParts, " ")
	if q.Title == "" {
		return q, fmt.Errorf("missing title")
	}
	return q, nil
}

// parseNaturalDate understands today, tomorrow, weekday names, nextweek,
// ISO dates and a few common layouts. Deadlines land at the end of the day.
func parseNaturalDate(s string, now time.Time) *time.Time {
	s = strings.ToLower(strings.TrimSpace(s))
	today := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	switch s {
	case "today":
		return &today
	case "tomorrow", "tom":
		t := today.AddDate(0, 0, 1)
		return &t
	case "nextweek":
		t := today.AddDate(0, 0, 7)
		return &t
	}

	for day := time.Sunday; day <= time.Saturday; day++ {
		name := strings.ToLower(day.String())
		if s == name || s == name[:3] {
			return nextWeekday(today, day)
		}
	}

	// Try parsing as date
	formats := []string{
		"2006-01-02",
		"01/02/2006",
		"Jan2",
		"Jan2,2006",
	}

	for _, format := range formats {
		t, err := time.ParseInLocation(format, s, now.Location())
		if err != nil {
			continue
		}
		// If no year, use current year
		year := t.Year()
		if year == 0 {
			year = now.Year()
		}
		t = time.Date(year, t.Month(), t.Day(), 23, 59, 59, 0, now.Location())
		return &t
	}

	return nil
}

// nextWeekday returns the next day after today that falls on day
func nextWeekday(today time.Time, day time.Weekday) *time.Time {
	daysUntil := int(day - today.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	t := today.AddDate(0, 0, daysUntil)
	return &t
}
