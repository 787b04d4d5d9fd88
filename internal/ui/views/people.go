package views

import (
	"fmt"
	"slices"

	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/priority"
	"github.com/dori/tablero/internal/ui/theme"
)

// minRosterColumn is the narrowest column the roster will draw
const minRosterColumn = 18

// PeopleView is the person roster: an unassigned column followed by one
// column per person. Dropping a project on a column makes that person its
// only member.
type PeopleView struct {
	width  int
	height int
}

// NewPeopleView creates a new person roster view
func NewPeopleView() PeopleView {
	return PeopleView{}
}

// SetSize sets the view dimensions
func (v PeopleView) SetSize(width, height int) PeopleView {
	v.width = width
	v.height = height
	return v
}

// Render draws the roster. A project with several members appears in
// every member's column. Column titles can be dragged onto cards. When the
// people do not all fit, a last column collects the projects owned only by
// people without a column, and the people bar below keeps every person a
// drop target.
func (v PeopleView) Render(d Data, ds DragState) Frame {
	t := theme.Current.Theme

	projects := slices.Clone(d.Projects)
	priority.SortProjects(d.Now, projects)

	people := d.People
	hidden := 0
	if fit := v.width/minRosterColumn - 1; fit >= 0 && len(people) > fit {
		// One column goes to the overflow
		fit = max(fit-1, 0)
		hidden = len(people) - fit
		people = people[:fit]
	}

	cols := []column{{
		title:   "Unassigned",
		color:   t.Subtle,
		target:  drag.Target{Kind: drag.TargetPerson, Value: drag.Unassigned},
		accepts: []drag.Kind{drag.KindProject},
	}}
	index := make(map[string]int)
	for _, p := range people {
		index[p.ID] = len(cols)
		cols = append(cols, column{
			title:   p.Initial() + " " + p.DisplayName,
			color:   t.Primary,
			target:  drag.Target{Kind: drag.TargetPerson, Value: p.ID},
			accepts: []drag.Kind{drag.KindProject},
			handle:  drag.PersonPayload{PersonID: p.ID},
		})
	}
	overflow := -1
	if hidden > 0 {
		overflow = len(cols)
		cols = append(cols, column{
			title: fmt.Sprintf("+%d others", hidden),
			color: t.Subtle,
		})
	}

	for _, p := range projects {
		c := projectCard(d, p)
		if p.IsUnassigned() {
			cols[0].cards = append(cols[0].cards, c)
			continue
		}
		placed := false
		for _, id := range p.Members {
			if i, ok := index[id]; ok {
				cols[i].cards = append(cols[i].cards, c)
				placed = true
			}
		}
		if !placed && overflow >= 0 {
			cols[overflow].cards = append(cols[overflow].cards, c)
		}
	}

	f := renderColumns(v.width, v.height-peopleBarHeight, cols, ds)
	bar := renderPeopleBar(v.width, v.height-peopleBarHeight, d, ds, &f.Layout)
	f.Content += "\n" + bar
	return f
}
