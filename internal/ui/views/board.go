package views

import (
	"slices"

	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/priority"
	"github.com/dori/tablero/internal/ui/theme"
)

// BoardView shows projects in status columns
type BoardView struct {
	width  int
	height int
}

// NewBoardView creates a new project status board
func NewBoardView() BoardView {
	return BoardView{}
}

// SetSize sets the view dimensions
func (v BoardView) SetSize(width, height int) BoardView {
	v.width = width
	v.height = height
	return v
}

// Render draws one column per status. The completed column only shows
// when completed projects were loaded.
func (v BoardView) Render(d Data, ds DragState) Frame {
	t := theme.Current.Theme

	projects := slices.Clone(d.Projects)
	priority.SortProjects(d.Now, projects)

	showCompleted := slices.ContainsFunc(projects, func(p model.Project) bool {
		return p.Status == model.ProjectCompleted
	})

	var cols []column
	index := make(map[model.ProjectStatus]int)
	for _, s := range model.ProjectStatuses {
		if s == model.ProjectCompleted && !showCompleted {
			continue
		}
		index[s] = len(cols)
		cols = append(cols, column{
			title:   s.Label(),
			color:   t.ProjectStatusColor(s),
			target:  drag.Target{Kind: drag.TargetStatus, Value: string(s)},
			accepts: []drag.Kind{drag.KindProject},
		})
	}
	for _, p := range projects {
		if i, ok := index[p.Status]; ok {
			cols[i].cards = append(cols[i].cards, projectCard(d, p))
		}
	}

	f := renderColumns(v.width, v.height-peopleBarHeight, cols, ds)
	bar := renderPeopleBar(v.width, v.height-peopleBarHeight, d, ds, &f.Layout)
	f.Content += "\n" + bar
	return f
}
