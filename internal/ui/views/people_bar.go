package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/ui/theme"
)

// peopleBarHeight is the number of rows the people bar takes
const peopleBarHeight = 1

// Workload counts the projects each person is a member of
func Workload(projects []model.Project) map[string]int {
	counts := make(map[string]int)
	for _, p := range projects {
		for _, id := range p.Members {
			counts[id]++
		}
	}
	return counts
}

// renderPeopleBar draws one chip per person on row y. A chip can be
// dragged onto cards, and a project card dropped on a chip reassigns it.
func renderPeopleBar(width, y int, d Data, ds DragState, l *drag.Layout) string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	if len(d.People) == 0 {
		return styles.Empty.Render(truncate(" no people yet, add one with: tablero add person <name>", width))
	}

	load := Workload(d.Projects)
	label := styles.CardMeta.Render("people ")
	x := lipgloss.Width(label)

	parts := []string{label}
	for _, p := range d.People {
		text := fmt.Sprintf("%s %s %d", p.Initial(), p.DisplayName, load[p.ID])
		chip := styles.Chip
		payload := drag.PersonPayload{PersonID: p.ID}
		target := drag.Target{Kind: drag.TargetPerson, Value: p.ID}
		switch {
		case ds.Payload != nil && ds.Payload == drag.Payload(payload):
			chip = chip.Background(t.DragSource).Foreground(t.Subtle)
		case ds.Payload != nil && ds.hovering(target):
			chip = chip.Background(t.DropTarget).Foreground(t.Background)
		case ds.Focus != nil && ds.Focus == drag.Payload(payload):
			chip = chip.Foreground(t.Primary).Bold(true)
		}

		rendered := chip.Render(text)
		w := lipgloss.Width(rendered)
		if x+w > width {
			parts = append(parts, styles.Empty.Render("…"))
			break
		}

		r := drag.Rect{X: x, Y: y, W: w, H: 1}
		l.AddHandle(r, payload)
		l.AddZone(r, target, drag.KindProject)

		parts = append(parts, rendered, " ")
		x += w + 1
	}

	return strings.Join(parts, "")
}
