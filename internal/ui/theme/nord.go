package theme

import "github.com/charmbracelet/lipgloss"

// Nord palette, https://www.nordtheme.com/
var Nord = Theme{
	Name: "nord",

	Background: lipgloss.Color("#2E3440"),
	Foreground: lipgloss.Color("#ECEFF4"),
	Subtle:     lipgloss.Color("#4C566A"),
	Highlight:  lipgloss.Color("#3B4252"),
	Border:     lipgloss.Color("#4C566A"),

	Primary:   lipgloss.Color("#88C0D0"),
	Secondary: lipgloss.Color("#81A1C1"),
	Info:      lipgloss.Color("#5E81AC"),
	Success:   lipgloss.Color("#A3BE8C"),
	Warning:   lipgloss.Color("#EBCB8B"),
	Error:     lipgloss.Color("#BF616A"),

	PriorityLow:      lipgloss.Color("#A3BE8C"),
	PriorityMedium:   lipgloss.Color("#EBCB8B"),
	PriorityHigh:     lipgloss.Color("#D08770"),
	PriorityCritical: lipgloss.Color("#BF616A"),

	StatusPending:  lipgloss.Color("#EBCB8B"),
	StatusActive:   lipgloss.Color("#88C0D0"),
	StatusReview:   lipgloss.Color("#B48EAD"),
	StatusDone:     lipgloss.Color("#A3BE8C"),
	StatusOnHold:   lipgloss.Color("#D08770"),
	StatusArchived: lipgloss.Color("#4C566A"),

	DropTarget: lipgloss.Color("#8FBCBB"), // Hovered lane or card
	DragSource: lipgloss.Color("#434C5E"),
}
