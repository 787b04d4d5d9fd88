package views

import (
	"slices"

	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/priority"
	"github.com/dori/tablero/internal/ui/theme"
)

// TasksView is the task board of one project: a column per task status
type TasksView struct {
	width  int
	height int
}

// NewTasksView creates a new task board
func NewTasksView() TasksView {
	return TasksView{}
}

// SetSize sets the view dimensions
func (v TasksView) SetSize(width, height int) TasksView {
	v.width = width
	v.height = height
	return v
}

// Render draws the status columns for d.Tasks and the people bar
func (v TasksView) Render(d Data, ds DragState) Frame {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	if d.Project == nil {
		return Frame{Content: styles.Empty.Render("  No project selected. Focus a project card and press enter.")}
	}

	tasks := slices.Clone(d.Tasks)
	priority.SortTasks(d.Now, tasks)

	cols := make([]column, len(model.TaskStatuses))
	for i, s := range model.TaskStatuses {
		cols[i] = column{
			title:   s.Label(),
			color:   t.TaskStatusColor(s),
			target:  drag.Target{Kind: drag.TargetStatus, Value: string(s)},
			accepts: []drag.Kind{drag.KindTask},
		}
	}
	for _, task := range tasks {
		if i := slices.Index(model.TaskStatuses, task.Status); i >= 0 {
			cols[i].cards = append(cols[i].cards, taskCard(d, task))
		}
	}

	f := renderColumns(v.width, v.height-peopleBarHeight, cols, ds)
	bar := renderPeopleBar(v.width, v.height-peopleBarHeight, d, ds, &f.Layout)
	f.Content += "\n" + bar
	return f
}
