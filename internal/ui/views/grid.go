package views

import (
	"slices"

	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/priority"
	"github.com/dori/tablero/internal/ui/theme"
)

// GridView groups projects into Urgent / In Progress / Normal lanes by
// effective priority. Dropping a project on a lane sets its priority.
type GridView struct {
	width  int
	height int
}

// NewGridView creates a new priority grid view
func NewGridView() GridView {
	return GridView{}
}

// SetSize sets the view dimensions
func (v GridView) SetSize(width, height int) GridView {
	v.width = width
	v.height = height
	return v
}

// Render draws the lanes and the people bar below them
func (v GridView) Render(d Data, ds DragState) Frame {
	t := theme.Current.Theme

	projects := slices.Clone(d.Projects)
	priority.SortProjects(d.Now, projects)

	cols := make([]column, len(model.Lanes))
	for i, lane := range model.Lanes {
		cols[i] = column{
			title:   lane.Label(),
			color:   t.PriorityColor(lane),
			target:  drag.Target{Kind: drag.TargetPriority, Value: string(lane)},
			accepts: []drag.Kind{drag.KindProject},
		}
	}
	for _, p := range projects {
		lane := priority.Bucket(priority.ForProject(d.Now, &p))
		i := slices.Index(model.Lanes, lane)
		cols[i].cards = append(cols[i].cards, projectCard(d, p))
	}

	f := renderColumns(v.width, v.height-peopleBarHeight, cols, ds)
	bar := renderPeopleBar(v.width, v.height-peopleBarHeight, d, ds, &f.Layout)
	f.Content += "\n" + bar
	return f
}
