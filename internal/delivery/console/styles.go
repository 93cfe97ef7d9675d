package console

import "github.com/charmbracelet/lipgloss"

// styles groups the lipgloss styles used by the console.
type styles struct {
	title    lipgloss.Style
	welcome  lipgloss.Style
	header   lipgloss.Style
	cell     lipgloss.Style
	answered lipgloss.Style
	border   lipgloss.Style
	question lipgloss.Style
	correct  lipgloss.Style
	error    lipgloss.Style
	choices  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *styles {
	return &styles{
		title:    r.NewStyle().Bold(true).Align(lipgloss.Center),
		welcome:  r.NewStyle().Foreground(lipgloss.Color("11")),
		header:   r.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center),
		cell:     r.NewStyle().Padding(0, 1).Align(lipgloss.Center),
		answered: r.NewStyle().Faint(true),
		border:   r.NewStyle().Foreground(lipgloss.Color("8")),
		question: r.NewStyle().Foreground(lipgloss.Color("12")),
		correct:  r.NewStyle().Foreground(lipgloss.Color("10")),
		error:    r.NewStyle().Foreground(lipgloss.Color("9")),
		choices:  r.NewStyle().Foreground(lipgloss.Color("13")),
	}
}
