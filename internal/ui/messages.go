package ui

import (
	"strings"

	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/reassign"
)

// View represents the current active view
type View int

const (
	ViewGrid View = iota
	ViewBoard
	ViewPeople
	ViewList
	ViewTasks
)

// String returns the display name for a view
func (v View) String() string {
	switch v {
	case ViewGrid:
		return "Priority"
	case ViewBoard:
		return "Status"
	case ViewPeople:
		return "People"
	case ViewList:
		return "List"
	case ViewTasks:
		return "Tasks"
	default:
		return "Unknown"
	}
}

// ParseView parses a view name as used in config and flags
func ParseView(name string) (View, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "grid", "priority", "":
		return ViewGrid, true
	case "board", "status":
		return ViewBoard, true
	case "people", "roster":
		return ViewPeople, true
	case "list":
		return ViewList, true
	case "tasks":
		return ViewTasks, true
	}
	return ViewGrid, false
}

// Messages for inter-component communication

// projectsLoadedMsg contains loaded projects
type projectsLoadedMsg struct {
	projects []model.Project
	err      error
}

// tasksLoadedMsg contains the tasks of one project
type tasksLoadedMsg struct {
	projectID string
	tasks     []model.Task
	err       error
}

// peopleLoadedMsg contains loaded people
type peopleLoadedMsg struct {
	people []model.Person
	err    error
}

// dropSettledMsg carries the result of a store write started by a drop
type dropSettledMsg struct {
	pending *reassign.Pending
	err     error
}

// toastExpiredMsg fires when the newest toast may have timed out
type toastExpiredMsg struct{}
