// Package priority derives the effective priority of projects and tasks
// from their manual setting and deadline.
package priority

import (
	"sort"
	"time"

	"github.com/dori/tablero/internal/model"
)

const (
	// EscalationDays is the deadline distance at or below which work is
	// always high priority, whatever the manual setting says.
	EscalationDays = 3
	highDays       = 7
	mediumDays     = 30
)

// DaysUntil returns the number of calendar days between the local midnight
// of now and the local midnight of deadline. Overdue deadlines are negative.
func DaysUntil(now, deadline time.Time) int {
	d := deadline.In(now.Location())
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// Effective computes the priority used for grouping, sorting and coloring.
//
// A deadline within EscalationDays (or already past) always yields high.
// Otherwise a manual priority other than auto is returned verbatim. Auto
// falls back to deadline bands: no deadline is low, up to a week is high,
// up to a month is medium and anything later is low.
func Effective(now time.Time, deadline *time.Time, manual model.Priority) model.Priority {
	if deadline != nil && DaysUntil(now, *deadline) <= EscalationDays {
		return model.PriorityHigh
	}

	if manual != "" && manual != model.PriorityAuto {
		return manual
	}

	if deadline == nil {
		return model.PriorityLow
	}

	days := DaysUntil(now, *deadline)
	switch {
	case days <= highDays:
		return model.PriorityHigh
	case days <= mediumDays:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// ForProject returns the effective priority of a project
func ForProject(now time.Time, p *model.Project) model.Priority {
	return Effective(now, p.Deadline, p.Priority)
}

// ForTask returns the effective priority of a task
func ForTask(now time.Time, t *model.Task) model.Priority {
	return Effective(now, t.Deadline, t.Priority)
}

// Bucket maps an effective priority onto one of the three lanes
func Bucket(p model.Priority) model.Priority {
	switch p {
	case model.PriorityCritical, model.PriorityHigh:
		return model.PriorityHigh
	case model.PriorityMedium:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}

// Rank returns a sort key, lower is more urgent
func Rank(p model.Priority) int {
	switch p {
	case model.PriorityCritical:
		return 0
	case model.PriorityHigh:
		return 1
	case model.PriorityMedium:
		return 2
	default:
		return 3
	}
}

// SortProjects orders projects by effective priority, most urgent first.
// The sort is stable so equal priorities keep the store order.
func SortProjects(now time.Time, projects []model.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return Rank(ForProject(now, &projects[i])) < Rank(ForProject(now, &projects[j]))
	})
}

// SortTasks orders tasks by effective priority, most urgent first
func SortTasks(now time.Time, tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return Rank(ForTask(now, &tasks[i])) < Rank(ForTask(now, &tasks[j]))
	})
}
