package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/ui/theme"
)

// Data is the snapshot every view renders from
type Data struct {
	Now      time.Time
	Projects []model.Project
	People   []model.Person

	// Task board only
	Project *model.Project
	Tasks   []model.Task
}

// Person returns the person with the given ID
func (d Data) Person(id string) (model.Person, bool) {
	for _, p := range d.People {
		if p.ID == id {
			return p, true
		}
	}
	return model.Person{}, false
}

// Initials renders member avatars as initials, "·" for nobody
func (d Data) Initials(ids []string) string {
	if len(ids) == 0 {
		return "·"
	}
	var b strings.Builder
	for _, id := range ids {
		if p, ok := d.Person(id); ok {
			b.WriteString(p.Initial())
		} else {
			b.WriteString("?")
		}
	}
	return b.String()
}

// DragState is what views need to draw drag feedback
type DragState struct {
	Payload drag.Payload // nil when no drag is active
	Target  *drag.Target
	Focus   drag.Payload // keyboard cursor
}

func (s DragState) hovering(t drag.Target) bool {
	return s.Target != nil && *s.Target == t
}

// Frame is one rendered view and the hit map for it. Layout coordinates
// are relative to the top-left cell of Content.
type Frame struct {
	Content string
	Layout  drag.Layout
}

// cardHeight is the height of a card including its border
const cardHeight = 4

type card struct {
	payload drag.Payload
	// zone, when set, makes the card a drop zone for the accepts kinds
	zone    *drag.Target
	accepts []drag.Kind
	title   string
	meta    string
	color   lipgloss.Color
}

type column struct {
	title   string
	color   lipgloss.Color
	target  drag.Target // zero for a lane that takes no drops
	accepts []drag.Kind
	cards   []card
	// handle makes the title row draggable
	handle drag.Payload
}

// renderColumns draws equally wide lanes of fixed height cards and records
// a zone per lane and a handle (and optional zone) per visible card.
func renderColumns(width, height int, cols []column, ds DragState) Frame {
	var f Frame
	if len(cols) == 0 || width <= 0 || height < 3 {
		return f
	}

	t := theme.Current.Theme
	styles := theme.Current.Styles

	colWidth := width / len(cols)
	innerWidth := colWidth - 2
	cardWidth := colWidth - 4
	maxCards := (height - 3) / cardHeight

	rendered := make([]string, len(cols))
	for i, col := range cols {
		x := i * colWidth
		if col.target.Kind != "" {
			f.Layout.AddZone(drag.Rect{X: x, Y: 0, W: colWidth, H: height}, col.target, col.accepts...)
		}

		titleStyle := styles.LaneTitle.Width(innerWidth).Foreground(col.color)
		if col.handle != nil {
			f.Layout.AddHandle(drag.Rect{X: x + 1, Y: 1, W: innerWidth, H: 1}, col.handle)
			switch {
			case ds.Payload != nil && ds.Payload == col.handle:
				titleStyle = titleStyle.Background(t.DragSource)
			case ds.Focus != nil && ds.Focus == col.handle:
				titleStyle = titleStyle.Underline(true)
			}
		}
		lines := []string{titleStyle.Render(truncate(fmt.Sprintf("%s (%d)", col.title, len(col.cards)), innerWidth))}

		for j, c := range col.cards {
			if j >= maxCards {
				more := fmt.Sprintf(" +%d more", len(col.cards)-maxCards)
				lines = append(lines, styles.Empty.Render(truncate(more, innerWidth)))
				break
			}

			r := drag.Rect{X: x + 1, Y: 2 + j*cardHeight, W: colWidth - 2, H: cardHeight}
			f.Layout.AddHandle(r, c.payload)
			if c.zone != nil {
				f.Layout.AddZone(r, *c.zone, c.accepts...)
			}
			lines = append(lines, renderCard(c, cardWidth, ds))
		}
		if len(col.cards) == 0 {
			lines = append(lines, styles.Empty.Render(" (empty)"))
		}

		lane := styles.Lane.Width(innerWidth).Height(height - 2)
		if ds.Payload != nil && ds.hovering(col.target) {
			lane = lane.BorderForeground(t.DropTarget)
		}
		rendered[i] = lane.Render(strings.Join(lines, "\n"))
	}

	f.Content = lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return f
}

func renderCard(c card, width int, ds DragState) string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	style := styles.Card.Width(width).BorderLeftForeground(c.color)
	switch {
	case ds.Payload != nil && ds.Payload == c.payload:
		style = style.Foreground(t.Subtle).Background(t.DragSource)
	case ds.Payload != nil && c.zone != nil && ds.hovering(*c.zone):
		style = style.BorderForeground(t.DropTarget)
	case ds.Focus != nil && ds.Focus == c.payload:
		style = style.BorderForeground(t.Primary)
	}

	title := styles.CardTitle.Render(truncate(c.title, width))
	meta := styles.CardMeta.Render(truncate(c.meta, width))
	return style.Render(title + "\n" + meta)
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
