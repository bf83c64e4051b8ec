// Package popup renders modal dialogs centered over the screen.
package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is a modal component that receives input while it is open.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content without outer border or centering.
	View() string
	SetSize(width, height int)
}
