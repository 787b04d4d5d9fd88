package model

import "strings"

// Priority is a manual or effective priority level
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical" // Tasks only
	PriorityAuto     Priority = "auto"     // Projects only, derive from deadline
)

// Lanes lists the priority buckets in display order
var Lanes = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

// ValidForProject reports whether p can be stored as a project's manual priority
func (p Priority) ValidForProject() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityAuto:
		return true
	}
	return false
}

// ValidForTask reports whether p can be stored as a task's manual priority
func (p Priority) ValidForTask() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Label returns the lane title for the priority
func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "Urgent"
	case PriorityMedium:
		return "In Progress"
	case PriorityLow:
		return "Normal"
	case PriorityCritical:
		return "Critical"
	case PriorityAuto:
		return "Auto"
	default:
		return string(p)
	}
}

// ParsePriority parses a priority name or shorthand (h, med, crit...)
func ParsePriority(s string) (Priority, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low", "l":
		return PriorityLow, true
	case "medium", "med", "m":
		return PriorityMedium, true
	case "high", "hi", "h", "urgent":
		return PriorityHigh, true
	case "critical", "crit", "c":
		return PriorityCritical, true
	case "auto", "a", "":
		return PriorityAuto, true
	}
	return "", false
}
