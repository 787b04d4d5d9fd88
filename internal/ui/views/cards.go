package views

import (
	"fmt"
	"strings"

	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/priority"
	"github.com/dori/tablero/internal/ui/theme"
)

// projectCard builds the card for a project. People can be dropped on it.
func projectCard(d Data, p model.Project) card {
	t := theme.Current.Theme
	eff := priority.ForProject(d.Now, &p)

	var meta []string
	if p.Client != "" {
		meta = append(meta, p.Client)
	}
	if p.Deadline != nil {
		meta = append(meta, priority.DeadlineLabel(d.Now, *p.Deadline))
	}
	if p.TotalTasks > 0 {
		meta = append(meta, fmt.Sprintf("%d%%", p.Progress))
	}
	meta = append(meta, d.Initials(p.Members))

	return card{
		payload: drag.ProjectPayload{ProjectID: p.ID},
		zone:    &drag.Target{Kind: drag.TargetProject, Value: p.ID},
		accepts: []drag.Kind{drag.KindPerson},
		title:   p.Name,
		meta:    strings.Join(meta, " · "),
		color:   t.PriorityColor(eff),
	}
}

// taskCard builds the card for a task. People can be dropped on it.
func taskCard(d Data, task model.Task) card {
	t := theme.Current.Theme
	eff := priority.ForTask(d.Now, &task)

	meta := []string{eff.Label()}
	if task.Deadline != nil {
		meta = append(meta, priority.DeadlineLabel(d.Now, *task.Deadline))
	}
	meta = append(meta, d.Initials(task.Assignees))

	return card{
		payload: drag.TaskPayload{TaskID: task.ID},
		zone:    &drag.Target{Kind: drag.TargetTask, Value: task.ID},
		accepts: []drag.Kind{drag.KindPerson},
		title:   task.Title,
		meta:    strings.Join(meta, " · "),
		color:   t.PriorityColor(eff),
	}
}
