package theme

import "github.com/charmbracelet/lipgloss"

// Dracula palette, https://draculatheme.com/
var Dracula = Theme{
	Name: "dracula",

	Background: lipgloss.Color("#282A36"),
	Foreground: lipgloss.Color("#F8F8F2"),
	Subtle:     lipgloss.Color("#6272A4"),
	Highlight:  lipgloss.Color("#44475A"),
	Border:     lipgloss.Color("#6272A4"),

	Primary:   lipgloss.Color("#BD93F9"),
	Secondary: lipgloss.Color("#8BE9FD"),
	Info:      lipgloss.Color("#8BE9FD"),
	Success:   lipgloss.Color("#50FA7B"),
	Warning:   lipgloss.Color("#F1FA8C"),
	Error:     lipgloss.Color("#FF5555"),

	PriorityLow:      lipgloss.Color("#50FA7B"),
	PriorityMedium:   lipgloss.Color("#F1FA8C"),
	PriorityHigh:     lipgloss.Color("#FFB86C"),
	PriorityCritical: lipgloss.Color("#FF5555"),

	StatusPending:  lipgloss.Color("#F1FA8C"),
	StatusActive:   lipgloss.Color("#8BE9FD"),
	StatusReview:   lipgloss.Color("#FF79C6"),
	StatusDone:     lipgloss.Color("#50FA7B"),
	StatusOnHold:   lipgloss.Color("#FFB86C"),
	StatusArchived: lipgloss.Color("#6272A4"),

	DropTarget: lipgloss.Color("#FF79C6"), // Hovered lane or card
	DragSource: lipgloss.Color("#44475A"),
}
