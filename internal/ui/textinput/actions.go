package textinput

import "github.com/llehouerou/flicks/internal/ui/action"

// Result is what the search box reports when it closes.
type Result struct {
	Query    string
	Canceled bool
}

func (Result) ActionType() string { return "textinput.result" }

// ActionMsg wraps a search box action for the app.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "textinput", Action: a}
}
