// Package action carries results from popups and pickers back to the app.
package action

// Action is one result a component can report. ActionType names it in logs.
type Action interface {
	ActionType() string
}

// Msg is the tea.Msg a component returns to report an Action. Source names
// the component ("textinput", "helpbindings").
type Msg struct {
	Source string
	Action Action
}
