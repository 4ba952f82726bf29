package vdom

import (
	"github.com/vcrobe/elmish/attr"
	"github.com/vcrobe/elmish/dom"
	"github.com/vcrobe/elmish/events"
)

// TextTag is the tag of a bare text node.
const TextTag = "#text"

// VNode represents a virtual DOM node: the tree a view returns.
type VNode struct {
	Tag      string
	Attrs    []attr.Directive // in application order, one entry per key
	Children []*VNode
	Content  string // text content, or the value of input/textarea
	Handlers map[string]func(dom.Event)

	// Autofocus is set by the "autofocus" directive.
	Autofocus bool

	// Skipped holds the directives ApplyAttributes rejected. The renderer
	// logs them when the node is materialized.
	Skipped error
}

// NewVNode creates a new VNode and applies the attribute directives to it.
func NewVNode(tag string, attrs []string, children []*VNode, content string) *VNode {
	n := &VNode{
		Tag:      tag,
		Children: children,
		Content:  content,
	}
	return ApplyAttributes(attrs, n)
}

// Attr returns the value set for key.
func (v *VNode) Attr(key string) (string, bool) {
	for _, a := range v.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// SetContent updates the Content field of the VNode.
func (v *VNode) SetContent(content string) {
	v.Content = content
}

// Append adds children and returns v.
func (v *VNode) Append(children ...*VNode) *VNode {
	v.Children = append(v.Children, children...)
	return v
}

// On attaches a zero-argument callback, typically signal(action), to event.
func (v *VNode) On(event string, fn func()) *VNode {
	return v.OnEvent(event, events.AdaptNoArgEvent(fn))
}

// OnValue attaches a callback that receives the target's value.
func (v *VNode) OnValue(event string, fn func(value string)) *VNode {
	return v.OnEvent(event, events.AdaptValueEvent(fn))
}

// OnEvent attaches a raw listener. A second listener for the same event
// replaces the first.
func (v *VNode) OnEvent(event string, fn func(dom.Event)) *VNode {
	if fn == nil {
		return v
	}
	if v.Handlers == nil {
		v.Handlers = make(map[string]func(dom.Event))
	}
	v.Handlers[event] = fn
	return v
}

// Text creates a bare text node.
func Text(text string) *VNode {
	return &VNode{Tag: TextTag, Content: text}
}

// El creates an element with any tag.
func El(tag string, attrs []string, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, children, "")
}

// Paragraph creates a <p> VNode with the given text and allows passing attributes.
func Paragraph(text string, attrs []string) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs []string, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Span creates a <span> with text content.
func Span(text string, attrs []string) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Button creates a <button> VNode with the given content and allows passing attributes.
func Button(content string, attrs []string, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// Input returns an <input>. The directives decide its type.
func Input(attrs []string) *VNode {
	return NewVNode("input", attrs, nil, "")
}

// InputText returns a VNode representing an <input type="text"> element.
func InputText(attrs []string) *VNode {
	return NewVNode("input", append([]string{"type=text"}, attrs...), nil, "")
}

// Label creates a <label>.
func Label(text string, attrs []string) *VNode {
	return NewVNode("label", attrs, nil, text)
}

// Link creates an <a>.
func Link(text string, attrs []string) *VNode {
	return NewVNode("a", attrs, nil, text)
}

// Heading creates an <h1>..<h6>; level is clamped into that range.
func Heading(level int, text string, attrs []string) *VNode {
	level = min(max(level, 1), 6)
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

// Ul creates a <ul> list container.
func Ul(attrs []string, items ...*VNode) *VNode {
	return NewVNode("ul", attrs, items, "")
}

// Li creates an <li> list item.
func Li(attrs []string, children ...*VNode) *VNode {
	return NewVNode("li", attrs, children, "")
}

// Section creates a <section>.
func Section(attrs []string, children ...*VNode) *VNode {
	return NewVNode("section", attrs, children, "")
}

// Header creates a <header>.
func Header(attrs []string, children ...*VNode) *VNode {
	return NewVNode("header", attrs, children, "")
}

// Footer creates a <footer>.
func Footer(attrs []string, children ...*VNode) *VNode {
	return NewVNode("footer", attrs, children, "")
}
