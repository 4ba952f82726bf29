//go:build js && wasm

// Package jsdom is the browser host: it implements the dom interfaces on
// syscall/js values.
package jsdom

import (
	"syscall/js"
	"time"

	"github.com/vcrobe/elmish/console"
	"github.com/vcrobe/elmish/dom"
)

var (
	_ dom.Document  = (*Document)(nil)
	_ dom.Element   = (*Element)(nil)
	_ dom.Scheduler = Scheduler{}
)

// Document wraps the global document.
type Document struct {
	doc js.Value
}

// New wraps js.Global().Get("document").
func New() *Document {
	return &Document{doc: js.Global().Get("document")}
}

func (d *Document) CreateElement(tag string) dom.Element {
	return &Element{v: d.doc.Call("createElement", tag)}
}

func (d *Document) CreateTextNode(text string) dom.Node {
	return &Element{v: d.doc.Call("createTextNode", text)}
}

func (d *Document) GetElementByID(id string) dom.Element {
	v := d.doc.Call("getElementById", id)
	if !v.Truthy() {
		return nil
	}
	return &Element{v: v}
}

// Element wraps a DOM node. js.Value is not comparable, so the wrapper
// remembers the children it appended and the listener funcs it created;
// both are released when the node is removed.
type Element struct {
	v        js.Value
	children []*Element
	funcs    []js.Func
}

// JSValue exposes the wrapped js.Value.
func (e *Element) JSValue() js.Value {
	return e.v
}

func (e *Element) AppendChild(child dom.Node) {
	c, ok := child.(*Element)
	if !ok {
		return
	}
	e.v.Call("appendChild", c.v)
	e.children = append(e.children, c)
}

func (e *Element) RemoveChild(child dom.Node) {
	c, ok := child.(*Element)
	if !ok {
		return
	}
	for i, known := range e.children {
		if known == c {
			e.children = append(e.children[:i], e.children[i+1:]...)
			break
		}
	}
	e.v.Call("removeChild", c.v)
	c.release()
}

// LastChild prefers the wrapper this package handed out; markup that was
// already in the page gets a fresh wrapper.
func (e *Element) LastChild() dom.Node {
	last := e.v.Get("lastChild")
	if !last.Truthy() {
		return nil
	}
	if n := len(e.children); n > 0 && e.children[n-1].v.Equal(last) {
		return e.children[n-1]
	}
	return &Element{v: last}
}

func (e *Element) SetAttribute(key, value string) {
	e.v.Call("setAttribute", key, value)
}

func (e *Element) GetAttribute(key string) (string, bool) {
	if !e.v.Call("hasAttribute", key).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", key).String(), true
}

func (e *Element) SetAutofocus(on bool) {
	e.v.Set("autofocus", on)
}

func (e *Element) Focus() {
	e.v.Call("focus")
}

func (e *Element) AddEventListener(event string, fn func(dom.Event)) {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := dom.Event{Type: event}
		if len(args) > 0 {
			if target := args[0].Get("target"); target.Truthy() {
				if v := target.Get("value"); v.Type() == js.TypeString {
					ev.Value = v.String()
				}
			}
		}
		fn(ev)
		return nil
	})
	e.v.Call("addEventListener", event, cb)
	e.funcs = append(e.funcs, cb)
}

// release frees every js.Func in the subtree.
func (e *Element) release() {
	for _, f := range e.funcs {
		f.Release()
	}
	e.funcs = nil
	for _, c := range e.children {
		c.release()
	}
	e.children = nil
}

// Scheduler runs callbacks through window.setTimeout.
type Scheduler struct{}

func (Scheduler) AfterFunc(d time.Duration, f func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer cb.Release()
		f()
		return nil
	})
	if v := js.Global().Call("setTimeout", cb, d.Milliseconds()); !v.Truthy() {
		console.Warn("setTimeout returned no handle")
	}
}
