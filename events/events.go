package events

import (
	"github.com/vcrobe/elmish/dom"
)

// Common DOM event names.
const (
	Click  = "click"
	Input  = "input"
	Change = "change"
	KeyUp  = "keyup"
	Submit = "submit"
	Focus  = "focus"
)

// AdaptNoArgEvent wraps a zero-argument callback, such as the one a signal
// returns, into a host listener.
func AdaptNoArgEvent(handler func()) func(dom.Event) {
	return func(dom.Event) {
		handler()
	}
}

// AdaptValueEvent wraps a callback that only needs the target's value.
func AdaptValueEvent(handler func(value string)) func(dom.Event) {
	return func(ev dom.Event) {
		handler(ev.Value)
	}
}
