package styles

import "github.com/charmbracelet/lipgloss"

// CardStyle returns the title card style for the given focus state.
func CardStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// ModalStyle frames the trailer and info dialogs.
func ModalStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(T().Primary).
		Padding(1, 2)
}
