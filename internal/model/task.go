package model

import (
	"slices"
	"time"
)

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskReview     TaskStatus = "review"
	TaskApproved   TaskStatus = "approved"
	TaskDelivered  TaskStatus = "delivered"
)

// TaskStatuses lists task statuses in kanban column order
var TaskStatuses = []TaskStatus{
	TaskPending,
	TaskInProgress,
	TaskReview,
	TaskApproved,
	TaskDelivered,
}

// Valid reports whether s is a known task status
func (s TaskStatus) Valid() bool {
	return slices.Contains(TaskStatuses, s)
}

// IsFinished returns true for statuses that count towards project progress
func (s TaskStatus) IsFinished() bool {
	return s == TaskApproved || s == TaskDelivered
}

// Label returns the column title for the status
func (s TaskStatus) Label() string {
	switch s {
	case TaskPending:
		return "Pending"
	case TaskInProgress:
		return "In Progress"
	case TaskReview:
		return "Review"
	case TaskApproved:
		return "Approved"
	case TaskDelivered:
		return "Delivered"
	default:
		return string(s)
	}
}

// Task represents a unit of work inside a project
type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Person IDs from task_assignments
	Assignees []string `json:"assignees,omitempty"`
}

// IsAssigned returns true if the person is assigned to the task
func (t *Task) IsAssigned(personID string) bool {
	return slices.Contains(t.Assignees, personID)
}

// Clone returns a copy that shares no slices with t
func (t Task) Clone() Task {
	t.Assignees = slices.Clone(t.Assignees)
	if t.Deadline != nil {
		d := *t.Deadline
		t.Deadline = &d
	}
	return t
}
