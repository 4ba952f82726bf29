// Package dom defines the host rendering primitives the runtime consumes.
//
// This package has NO build tags. Concrete hosts live in htmldom (native,
// in-memory) and jsdom (browser, js/wasm).
package dom

import "time"

// Node is anything that can hold children.
type Node interface {
	AppendChild(child Node)
	RemoveChild(child Node)
	// LastChild returns nil when the node has no children.
	LastChild() Node
}

// Element is a node that carries attributes, focus and listeners.
type Element interface {
	Node
	SetAttribute(key, value string)
	GetAttribute(key string) (string, bool)
	SetAutofocus(on bool)
	Focus()
	AddEventListener(event string, fn func(Event))
}

// Document creates nodes and resolves containers.
type Document interface {
	CreateElement(tag string) Element
	CreateTextNode(text string) Node
	// GetElementByID returns nil when no element has the id.
	GetElementByID(id string) Element
}

// Scheduler runs f once after d has elapsed. Fire-and-forget.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// Event is what a host passes to listeners.
type Event struct {
	Type  string
	Value string // the target's current value, if it has one
}
