// Package drag tracks a single pointer or keyboard drag and maps screen
// cells onto drag handles and drop zones. It has no UI dependencies.
//
// Payloads carry only the kind and ID of the dragged entity. The resolver
// looks the entity itself up in the optimistic collection when the drop
// lands, so a drag never holds a stale copy.
package drag

import "fmt"

// Kind names the type of entity being dragged
type Kind string

const (
	KindProject Kind = "project"
	KindTask    Kind = "task"
	KindPerson  Kind = "person"
)

// Payload identifies the entity carried by a drag. The set of payloads is
// closed.
type Payload interface {
	Kind() Kind
	ID() string
	payload()
}

// ProjectPayload carries a project card
type ProjectPayload struct{ ProjectID string }

// TaskPayload carries a task card
type TaskPayload struct{ TaskID string }

// PersonPayload carries a person chip
type PersonPayload struct{ PersonID string }

func (p ProjectPayload) Kind() Kind { return KindProject }
func (p ProjectPayload) ID() string { return p.ProjectID }
func (ProjectPayload) payload()     {}

func (p TaskPayload) Kind() Kind { return KindTask }
func (p TaskPayload) ID() string { return p.TaskID }
func (TaskPayload) payload()     {}

func (p PersonPayload) Kind() Kind { return KindPerson }
func (p PersonPayload) ID() string { return p.PersonID }
func (PersonPayload) payload()     {}

// Describe formats a payload for logs and status lines
func Describe(p Payload) string {
	if p == nil {
		return "nothing"
	}
	return fmt.Sprintf("%s %s", p.Kind(), p.ID())
}
