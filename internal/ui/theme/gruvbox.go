package theme

import "github.com/charmbracelet/lipgloss"

// Gruvbox dark palette, https://github.com/morhetz/gruvbox
var Gruvbox = Theme{
	Name: "gruvbox",

	Background: lipgloss.Color("#282828"),
	Foreground: lipgloss.Color("#EBDBB2"),
	Subtle:     lipgloss.Color("#928374"),
	Highlight:  lipgloss.Color("#3C3836"),
	Border:     lipgloss.Color("#504945"),

	Primary:   lipgloss.Color("#83A598"),
	Secondary: lipgloss.Color("#8EC07C"),
	Info:      lipgloss.Color("#83A598"),
	Success:   lipgloss.Color("#B8BB26"),
	Warning:   lipgloss.Color("#FABD2F"),
	Error:     lipgloss.Color("#FB4934"),

	PriorityLow:      lipgloss.Color("#B8BB26"),
	PriorityMedium:   lipgloss.Color("#FABD2F"),
	PriorityHigh:     lipgloss.Color("#FE8019"),
	PriorityCritical: lipgloss.Color("#FB4934"),

	StatusPending:  lipgloss.Color("#FABD2F"),
	StatusActive:   lipgloss.Color("#83A598"),
	StatusReview:   lipgloss.Color("#D3869B"),
	StatusDone:     lipgloss.Color("#B8BB26"),
	StatusOnHold:   lipgloss.Color("#FE8019"),
	StatusArchived: lipgloss.Color("#928374"),

	DropTarget: lipgloss.Color("#8EC07C"), // Hovered lane or card
	DragSource: lipgloss.Color("#3C3836"),
}
