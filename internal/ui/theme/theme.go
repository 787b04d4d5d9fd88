package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tablero/internal/model"
)

// Theme defines the color scheme and styles for the UI
type Theme struct {
	Name string

	// Base colors
	Background lipgloss.Color
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Highlight  lipgloss.Color
	Border     lipgloss.Color

	// Semantic colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color

	// Priority lanes
	PriorityLow      lipgloss.Color
	PriorityMedium   lipgloss.Color
	PriorityHigh     lipgloss.Color
	PriorityCritical lipgloss.Color

	// Status columns
	StatusPending  lipgloss.Color
	StatusActive   lipgloss.Color
	StatusReview   lipgloss.Color
	StatusDone     lipgloss.Color
	StatusOnHold   lipgloss.Color
	StatusArchived lipgloss.Color

	// Drag feedback
	DropTarget lipgloss.Color
	DragSource lipgloss.Color
}

// PriorityColor returns the lane color for an effective priority
func (t Theme) PriorityColor(p model.Priority) lipgloss.Color {
	switch p {
	case model.PriorityCritical:
		return t.PriorityCritical
	case model.PriorityHigh:
		return t.PriorityHigh
	case model.PriorityMedium:
		return t.PriorityMedium
	default:
		return t.PriorityLow
	}
}

// ProjectStatusColor returns the column color for a project status
func (t Theme) ProjectStatusColor(s model.ProjectStatus) lipgloss.Color {
	switch s {
	case model.ProjectActive:
		return t.StatusActive
	case model.ProjectCompleted:
		return t.StatusDone
	case model.ProjectOnHold:
		return t.StatusOnHold
	case model.ProjectArchived:
		return t.StatusArchived
	default:
		return t.StatusPending
	}
}

// TaskStatusColor returns the column color for a task status
func (t Theme) TaskStatusColor(s model.TaskStatus) lipgloss.Color {
	switch s {
	case model.TaskInProgress:
		return t.StatusActive
	case model.TaskReview:
		return t.StatusReview
	case model.TaskApproved, model.TaskDelivered:
		return t.StatusDone
	default:
		return t.StatusPending
	}
}

// Styles holds pre-computed lipgloss styles based on theme
type Styles struct {
	Header lipgloss.Style
	Footer lipgloss.Style

	// Lanes and cards
	Lane         lipgloss.Style
	LaneTitle    lipgloss.Style
	Card         lipgloss.Style
	CardTitle    lipgloss.Style
	CardMeta     lipgloss.Style
	DueDate      lipgloss.Style
	Overdue      lipgloss.Style
	Chip         lipgloss.Style
	Empty        lipgloss.Style
	Placeholder  lipgloss.Style
	InputFocused lipgloss.Style

	// Help styles
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}

// NewStyles creates styles from a theme
func NewStyles(t Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Padding(0, 1),

		Lane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		LaneTitle: lipgloss.NewStyle().
			Bold(true).
			Align(lipgloss.Center),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(t.Border).
			Foreground(t.Foreground),

		CardTitle: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Bold(true),

		CardMeta: lipgloss.NewStyle().
			Foreground(t.Subtle),

		DueDate: lipgloss.NewStyle().
			Foreground(t.Warning),

		Overdue: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		Chip: lipgloss.NewStyle().
			Foreground(t.Info).
			Background(t.Highlight).
			Padding(0, 1),

		Empty: lipgloss.NewStyle().
			Foreground(t.Subtle).
			Italic(true),

		Placeholder: lipgloss.NewStyle().
			Foreground(t.Subtle),

		InputFocused: lipgloss.NewStyle().
			Foreground(t.Primary),

		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(t.Subtle),

		HelpSeparator: lipgloss.NewStyle().
			Foreground(t.Border),

		ToastInfo: lipgloss.NewStyle().
			Foreground(t.Info),

		ToastSuccess: lipgloss.NewStyle().
			Foreground(t.Success),

		ToastError: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),
	}
}

// Current holds the current active theme and styles
var Current = struct {
	Theme  Theme
	Styles Styles
}{
	Theme:  Nord,
	Styles: NewStyles(Nord),
}

// SetTheme changes the current theme
func SetTheme(t Theme) {
	Current.Theme = t
	Current.Styles = NewStyles(t)
}

// Available returns all available themes
func Available() []Theme {
	return []Theme{
		Nord,
		Dracula,
		Gruvbox,
		Catppuccin,
	}
}

// ByName returns a theme by its name
func ByName(name string) (Theme, bool) {
	for _, t := range Available() {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Next returns the theme after the named one, wrapping around
func Next(name string) Theme {
	themes := Available()
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
