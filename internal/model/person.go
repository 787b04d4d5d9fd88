package model

import (
	"strings"
	"time"
)

// Person is someone who can own projects and be assigned to tasks
type Person struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	AvatarRef   string    `json:"avatar_ref,omitempty"`
	Role        string    `json:"role,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Initial returns the upper-cased first letter of the display name
func (p *Person) Initial() string {
	name := strings.TrimSpace(p.DisplayName)
	if name == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}

// ProjectMember links a person to a project
type ProjectMember struct {
	ProjectID string `json:"project_id"`
	PersonID  string `json:"person_id"`
}

// TaskAssignment links a person to a task
type TaskAssignment struct {
	TaskID   string `json:"task_id"`
	PersonID string `json:"person_id"`
}
