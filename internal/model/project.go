package model

import (
	"slices"
	"time"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	ProjectPending   ProjectStatus = "pending"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectArchived  ProjectStatus = "archived"
)

// ProjectStatuses lists project statuses in board column order
var ProjectStatuses = []ProjectStatus{
	ProjectPending,
	ProjectActive,
	ProjectCompleted,
	ProjectOnHold,
	ProjectArchived,
}

// Valid reports whether s is a known project status
func (s ProjectStatus) Valid() bool {
	return slices.Contains(ProjectStatuses, s)
}

// Label returns the column title for the status
func (s ProjectStatus) Label() string {
	switch s {
	case ProjectPending:
		return "Pending"
	case ProjectActive:
		return "Active"
	case ProjectCompleted:
		return "Completed"
	case ProjectOnHold:
		return "On Hold"
	case ProjectArchived:
		return "Archived"
	default:
		return string(s)
	}
}

// Project represents a client project
type Project struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Client    string        `json:"client,omitempty"`
	Deadline  *time.Time    `json:"deadline,omitempty"`
	Priority  Priority      `json:"priority"` // Manual setting, PriorityAuto by default
	Status    ProjectStatus `json:"status"`
	QuickNote string        `json:"quick_note,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	// Person IDs from project_members
	Members []string `json:"members,omitempty"`

	// Computed by the store (not patched locally)
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	Progress       int `json:"progress"` // Percent
}

// HasMember returns true if the person is a member of the project
func (p *Project) HasMember(personID string) bool {
	return slices.Contains(p.Members, personID)
}

// IsUnassigned returns true if nobody owns the project
func (p *Project) IsUnassigned() bool {
	return len(p.Members) == 0
}

// Clone returns a copy that shares no slices with p
func (p Project) Clone() Project {
	p.Members = slices.Clone(p.Members)
	if p.Deadline != nil {
		d := *p.Deadline
		p.Deadline = &d
	}
	return p
}
