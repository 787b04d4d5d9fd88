package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, https://catppuccin.com/
var Catppuccin = Theme{
	Name: "catppuccin",

	Background: lipgloss.Color("#1E1E2E"),
	Foreground: lipgloss.Color("#CDD6F4"),
	Subtle:     lipgloss.Color("#6C7086"),
	Highlight:  lipgloss.Color("#313244"),
	Border:     lipgloss.Color("#45475A"),

	Primary:   lipgloss.Color("#89B4FA"),
	Secondary: lipgloss.Color("#CBA6F7"),
	Info:      lipgloss.Color("#74C7EC"),
	Success:   lipgloss.Color("#A6E3A1"),
	Warning:   lipgloss.Color("#F9E2AF"),
	Error:     lipgloss.Color("#F38BA8"),

	PriorityLow:      lipgloss.Color("#A6E3A1"),
	PriorityMedium:   lipgloss.Color("#F9E2AF"),
	PriorityHigh:     lipgloss.Color("#FAB387"),
	PriorityCritical: lipgloss.Color("#F38BA8"),

	StatusPending:  lipgloss.Color("#F9E2AF"),
	StatusActive:   lipgloss.Color("#89B4FA"),
	StatusReview:   lipgloss.Color("#CBA6F7"),
	StatusDone:     lipgloss.Color("#A6E3A1"),
	StatusOnHold:   lipgloss.Color("#FAB387"),
	StatusArchived: lipgloss.Color("#6C7086"),

	DropTarget: lipgloss.Color("#94E2D5"), // Hovered lane or card
	DragSource: lipgloss.Color("#313244"),
}
