// Package counter is the classic counter application: increment,
// decrement and reset buttons around a number.
package counter

import (
	"strconv"

	"github.com/vcrobe/elmish/events"
	"github.com/vcrobe/elmish/runtime"
	"github.com/vcrobe/elmish/vdom"
)

// Action is a counter action.
type Action string

const (
	Inc   Action = "inc"
	Dec   Action = "dec"
	Reset Action = "reset"
)

// Update applies an action. Unknown actions leave the model unchanged.
func Update(action Action, model int) int {
	switch action {
	case Inc:
		return model + 1
	case Dec:
		return model - 1
	case Reset:
		return 0
	default:
		return model
	}
}

// View renders the buttons and the current count.
func View(model int, signal runtime.Signal[Action]) *vdom.VNode {
	return vdom.Section([]string{"class=counter"},
		vdom.Button("+", []string{"class=inc"}).On(events.Click, signal(Inc)),
		vdom.Div([]string{"class=count"}, vdom.Text(strconv.Itoa(model))),
		vdom.Button("-", []string{"class=dec"}).On(events.Click, signal(Dec)),
		vdom.Button("Reset", []string{"class=reset"}).On(events.Click, signal(Reset)),
	)
}
