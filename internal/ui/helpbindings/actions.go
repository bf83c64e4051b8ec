package helpbindings

import "github.com/llehouerou/flicks/internal/ui/action"

// Close asks the app to close the shortcuts popup.
type Close struct{}

func (Close) ActionType() string { return "helpbindings.close" }

// ActionMsg wraps a shortcuts popup action for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "helpbindings", Action: a}
}
