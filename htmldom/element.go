package htmldom

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/vcrobe/elmish/dom"
	"github.com/vcrobe/elmish/events"
)

var _ dom.Element = (*Element)(nil)

// Element wraps one html.Node. Text nodes are wrapped too; on them the
// attribute and listener methods do nothing.
type Element struct {
	doc       *Document
	n         *html.Node
	listeners map[string][]func(dom.Event)
	detached  map[*html.Node]*Element
}

// Node exposes the underlying html.Node.
func (e *Element) Node() *html.Node {
	return e.n
}

// Tag returns the element name, or "#text" for text nodes.
func (e *Element) Tag() string {
	if e.n.Type == html.TextNode {
		return "#text"
	}
	return e.n.Data
}

// ID returns the id attribute.
func (e *Element) ID() string {
	return attrValue(e.n, "id")
}

// AppendChild moves child to the end of e's children. A child that already
// has a parent is detached first.
func (e *Element) AppendChild(child dom.Node) {
	c, ok := child.(*Element)
	if !ok || c == nil || c.n == e.n {
		return
	}
	if c.n.Parent != nil {
		c.n.Parent.RemoveChild(c.n)
	}
	if c.detached != nil {
		e.doc.adopt(c)
	}
	e.n.AppendChild(c.n)
}

// RemoveChild detaches child. It panics if child is not a child of e,
// matching html.Node.RemoveChild.
func (e *Element) RemoveChild(child dom.Node) {
	c, ok := child.(*Element)
	if !ok || c == nil || c.n.Parent != e.n {
		panic("htmldom: RemoveChild called for a non-child node")
	}
	e.n.RemoveChild(c.n)
	e.doc.release(c)
}

// LastChild returns nil when e has no children.
func (e *Element) LastChild() dom.Node {
	if e.n.LastChild == nil {
		return nil
	}
	return e.doc.wrap(e.n.LastChild)
}

// ChildElementCount counts element children only.
func (e *Element) ChildElementCount() int {
	count := 0
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			count++
		}
	}
	return count
}

// IsConnected reports whether e is part of the document tree.
func (e *Element) IsConnected() bool {
	return e.doc.connected(e.n)
}

// SetAttribute sets or replaces an attribute. Names are lowercased.
func (e *Element) SetAttribute(key, value string) {
	if e.n.Type != html.ElementNode {
		return
	}
	key = strings.ToLower(key)
	for i := range e.n.Attr {
		if e.n.Attr[i].Namespace == "" && e.n.Attr[i].Key == key {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: key, Val: value})
}

// GetAttribute returns the attribute value and whether it is present.
func (e *Element) GetAttribute(key string) (string, bool) {
	return lookupAttr(e.n, strings.ToLower(key))
}

// RemoveAttribute deletes an attribute if present.
func (e *Element) RemoveAttribute(key string) {
	key = strings.ToLower(key)
	attrs := e.n.Attr[:0]
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		attrs = append(attrs, a)
	}
	e.n.Attr = attrs
}

// SetAutofocus reflects the autofocus property into its attribute.
func (e *Element) SetAutofocus(on bool) {
	if on {
		e.SetAttribute("autofocus", "autofocus")
		return
	}
	e.RemoveAttribute("autofocus")
}

// Autofocus reports the autofocus property.
func (e *Element) Autofocus() bool {
	_, ok := e.GetAttribute("autofocus")
	return ok
}

// Focus makes e the active element when it is connected and focusable, and
// fires "focus" if e did not already have it. Otherwise it does nothing,
// like a browser.
func (e *Element) Focus() {
	if !e.Focusable() || !e.IsConnected() || e.doc.active == e.n {
		return
	}
	e.doc.active = e.n
	e.Dispatch(events.Focus)
}

// Focusable reports whether a browser would let e take focus.
func (e *Element) Focusable() bool {
	if e.n.Type != html.ElementNode {
		return false
	}
	if _, disabled := e.GetAttribute("disabled"); disabled {
		return false
	}
	if _, ok := e.GetAttribute("tabindex"); ok {
		return true
	}
	switch e.n.Data {
	case "input", "button", "select", "textarea":
		return true
	case "a":
		_, ok := e.GetAttribute("href")
		return ok
	}
	return false
}

// AddEventListener registers fn for event. Listeners run in registration order.
func (e *Element) AddEventListener(event string, fn func(dom.Event)) {
	if fn == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]func(dom.Event))
	}
	e.listeners[event] = append(e.listeners[event], fn)
}

// Dispatch runs the listeners registered for event and reports whether
// there were any.
func (e *Element) Dispatch(event string) bool {
	fns := e.listeners[event]
	if len(fns) == 0 {
		return false
	}
	ev := dom.Event{Type: event, Value: e.Value()}
	for _, fn := range fns {
		fn(ev)
	}
	return true
}

// Click simulates a user click. Checkboxes toggle before the listeners run.
func (e *Element) Click() {
	if e.isCheckbox() {
		if e.Checked() {
			e.RemoveAttribute("checked")
		} else {
			e.SetAttribute("checked", "")
		}
	}
	e.Dispatch(events.Click)
}

// Input simulates typing: the value changes, then "input" fires.
func (e *Element) Input(value string) {
	e.SetAttribute("value", value)
	e.Dispatch(events.Input)
}

// Value returns the value attribute.
func (e *Element) Value() string {
	return attrValue(e.n, "value")
}

// Checked reports the checked state, which follows the attribute's presence.
func (e *Element) Checked() bool {
	_, ok := e.GetAttribute("checked")
	return ok
}

func (e *Element) isCheckbox() bool {
	if e.n.Type != html.ElementNode || e.n.Data != "input" {
		return false
	}
	typ, _ := e.GetAttribute("type")
	return strings.EqualFold(typ, "checkbox") || strings.EqualFold(typ, "radio")
}

// TextContent concatenates all descendant text.
func (e *Element) TextContent() string {
	var sb strings.Builder
	walk(e.n, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		return true
	})
	return sb.String()
}

// InnerHTML renders e's children.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

// ElementsByClassName searches e's subtree.
func (e *Element) ElementsByClassName(class string) []*Element {
	return e.doc.collect(e.n, func(n *html.Node) bool {
		return n != e.n && hasClass(n, class)
	})
}
