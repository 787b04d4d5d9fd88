// Package store defines the contract between the reassignment engine and
// the backing entity store.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dori/tablero/internal/model"
)

var (
	// ErrNotFound is returned when the addressed record does not exist
	ErrNotFound = errors.New("not found")
	// ErrConstraint is returned when the store rejects a write
	ErrConstraint = errors.New("constraint violation")
)

// AssignmentStore is the narrow set of writes issued by drag operations.
// Each call is atomic from the caller's point of view.
type AssignmentStore interface {
	ListPeople(ctx context.Context) ([]model.Person, error)
	UpdateProjectPriority(ctx context.Context, projectID string, priority model.Priority) error
	UpdateProjectStatus(ctx context.Context, projectID string, status model.ProjectStatus) error
	UpdateTaskStatus(ctx context.Context, taskID string, status model.TaskStatus) error
	// ReplaceProjectMembers deletes every member edge of the project and,
	// when personID is non-nil, inserts a single edge to that person.
	ReplaceProjectMembers(ctx context.Context, projectID string, personID *string) error
	UpsertProjectMember(ctx context.Context, projectID, personID string) error
	UpsertTaskAssignment(ctx context.Context, taskID, personID string) error
}

// Reader loads the collections rendered by the views
type Reader interface {
	ListProjects(ctx context.Context, includeCompleted bool) ([]model.Project, error)
	ListTasks(ctx context.Context, projectID string) ([]model.Task, error)
	ListPeople(ctx context.Context) ([]model.Person, error)
}

// Error describes a failed store operation
type Error struct {
	Op     string // e.g. "replace project members"
	Entity string // project, task, person
	ID     string
	Err    error
}

func (e *Error) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s %s: %v", e.Op, e.Entity, e.ID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns nil for a nil err, otherwise an *Error
func Wrap(op, entity, id string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Entity: entity, ID: id, Err: err}
}
