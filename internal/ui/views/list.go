package views

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/priority"
	"github.com/dori/tablero/internal/ui/theme"
)

// ListView shows one project per row, most urgent first, with a search
// filter over name and client.
type ListView struct {
	width  int
	height int

	searching    bool
	input        textinput.Model
	searchFilter string
}

// NewListView creates a new list view
func NewListView() ListView {
	ti := textinput.New()
	ti.Placeholder = "Filter projects..."
	ti.CharLimit = 128
	ti.Prompt = "/"

	return ListView{input: ti}
}

// SetSize sets the view dimensions
func (v ListView) SetSize(width, height int) ListView {
	v.width = width
	v.height = height
	v.input.Width = width - 4
	return v
}

// IsInputMode returns whether the search input has focus
func (v ListView) IsInputMode() bool {
	return v.searching
}

// Filter returns the active search filter
func (v ListView) Filter() string {
	return v.searchFilter
}

// StartSearch focuses the search input
func (v ListView) StartSearch() (ListView, tea.Cmd) {
	v.searching = true
	v.input.SetValue(v.searchFilter)
	v.input.CursorEnd()
	cmd := v.input.Focus()
	return v, cmd
}

// Update handles keys while the search input has focus
func (v ListView) Update(msg tea.KeyMsg) (ListView, tea.Cmd) {
	if !v.searching {
		return v, nil
	}

	switch msg.String() {
	case "enter":
		v.searchFilter = strings.TrimSpace(v.input.Value())
		v.searching = false
		v.input.Blur()
		return v, nil

	case "esc":
		// Cancel clears the filter
		v.searchFilter = ""
		v.searching = false
		v.input.SetValue("")
		v.input.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)

	// Apply filter as user types
	v.searchFilter = v.input.Value()
	return v, cmd
}

func (v ListView) matches(p model.Project) bool {
	if v.searchFilter == "" {
		return true
	}
	q := strings.ToLower(v.searchFilter)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Client), q)
}

// Render draws the filter line, one row per project and the people bar
func (v ListView) Render(d Data, ds DragState) Frame {
	styles := theme.Current.Styles

	var f Frame
	var lines []string

	switch {
	case v.searching:
		lines = append(lines, styles.InputFocused.Render(v.input.View()))
	case v.searchFilter != "":
		lines = append(lines, styles.Placeholder.Render(fmt.Sprintf("/%s  (esc in search to clear)", v.searchFilter)))
	default:
		lines = append(lines, styles.Placeholder.Render("/ to filter"))
	}

	projects := slices.Clone(d.Projects)
	priority.SortProjects(d.Now, projects)
	projects = slices.DeleteFunc(projects, func(p model.Project) bool { return !v.matches(p) })

	maxRows := v.height - 1 - peopleBarHeight
	for i, p := range projects {
		if i >= maxRows-1 && len(projects) > maxRows {
			lines = append(lines, styles.Empty.Render(fmt.Sprintf("  +%d more", len(projects)-i)))
			break
		}

		y := len(lines)
		payload := drag.ProjectPayload{ProjectID: p.ID}
		target := drag.Target{Kind: drag.TargetProject, Value: p.ID}
		r := drag.Rect{X: 0, Y: y, W: v.width, H: 1}
		f.Layout.AddHandle(r, payload)
		f.Layout.AddZone(r, target, drag.KindPerson)

		lines = append(lines, v.renderRow(d, p, ds, payload, target))
	}
	if len(projects) == 0 {
		lines = append(lines, styles.Empty.Render("  (no projects)"))
	}

	for len(lines) < v.height-peopleBarHeight {
		lines = append(lines, "")
	}
	lines = append(lines, renderPeopleBar(v.width, len(lines), d, ds, &f.Layout))

	f.Content = strings.Join(lines, "\n")
	return f
}

func (v ListView) renderRow(d Data, p model.Project, ds DragState, payload drag.Payload, target drag.Target) string {
	t := theme.Current.Theme
	styles := theme.Current.Styles

	eff := priority.ForProject(d.Now, &p)
	marker := lipgloss.NewStyle().Foreground(t.PriorityColor(eff)).Render("▌")

	due := ""
	dueStyle := styles.DueDate
	if p.Deadline != nil {
		due = priority.DeadlineLabel(d.Now, *p.Deadline)
		if priority.DaysUntil(d.Now, *p.Deadline) < 0 {
			dueStyle = styles.Overdue
		}
	}

	nameWidth := max(v.width/3, 10)
	name := lipgloss.NewStyle().Width(nameWidth).Render(truncate(p.Name, nameWidth-1))
	client := styles.CardMeta.Width(14).Render(truncate(p.Client, 13))
	status := lipgloss.NewStyle().Foreground(t.ProjectStatusColor(p.Status)).Width(11).Render(p.Status.Label())
	deadline := dueStyle.Width(20).Render(due)
	progress := styles.CardMeta.Width(6).Render(fmt.Sprintf("%d%%", p.Progress))
	members := styles.CardMeta.Render(d.Initials(p.Members))

	row := lipgloss.JoinHorizontal(lipgloss.Top, marker, " ", name, client, status, deadline, progress, members)

	rowStyle := lipgloss.NewStyle().MaxWidth(v.width)
	switch {
	case ds.Payload != nil && ds.Payload == payload:
		rowStyle = rowStyle.Background(t.DragSource)
	case ds.Payload != nil && ds.hovering(target):
		rowStyle = rowStyle.Background(t.DropTarget).Foreground(t.Background)
	case ds.Focus != nil && ds.Focus == payload:
		rowStyle = rowStyle.Background(t.Highlight)
	}
	return rowStyle.Render(row)
}
