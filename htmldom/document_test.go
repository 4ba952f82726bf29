package htmldom

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/elmish/dom"
	"github.com/vcrobe/elmish/vdom"
)

func TestNew_CreatesContainers(t *testing.T) {
	doc := New("app", "other")

	require.NotNil(t, doc.GetElementByID("app"))
	require.NotNil(t, doc.GetElementByID("other"))
	assert.Nil(t, doc.GetElementByID("missing"))
	assert.Equal(t, `<html><head></head><body><div id="app"></div><div id="other"></div></body></html>`, doc.String())
}

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<!DOCTYPE html><html><body><div id="test-app"><p>hi</p></div></body></html>`))
	require.NoError(t, err)

	app := doc.ElementByID("test-app")
	require.NotNil(t, app)
	assert.Equal(t, "hi", app.TextContent())
	assert.Equal(t, 1, app.ChildElementCount())
	assert.NotNil(t, doc.Body())
}

func TestAppendRemoveLastChild(t *testing.T) {
	doc := New("app")
	app := doc.ElementByID("app")
	assert.Nil(t, app.LastChild())

	div := doc.CreateElement("div")
	txt := doc.CreateTextNode("Hello World!")
	div.AppendChild(txt)
	app.AppendChild(div)

	assert.Same(t, div, app.LastChild())
	assert.Same(t, txt, div.LastChild())
	assert.Equal(t, "Hello World!", app.TextContent())

	app.RemoveChild(div)
	assert.Nil(t, app.LastChild())
	assert.False(t, div.(*Element).IsConnected())
}

func TestRemoveChild_ReleasesSubtree(t *testing.T) {
	// Arrange
	doc := New("app")
	app := doc.ElementByID("app")
	r := vdom.NewRenderer(doc, nil, 0, nil)
	clicks := 0
	render := func() {
		r.RenderTo(app, vdom.Div(nil,
			vdom.Button("+", []string{"id=inc"}).On("click", func() { clicks++ }),
			vdom.Paragraph("count", nil),
		))
	}
	render()
	before := len(doc.nodes)

	// Act
	for i := 0; i < 100; i++ {
		doc.ElementByID("inc").Click()
		vdom.Clear(app)
		render()
	}

	// Assert
	assert.Equal(t, 100, clicks)
	assert.Equal(t, before, len(doc.nodes), "removed nodes must not stay indexed")
}

func TestAppendChild_RestoresReleasedSubtree(t *testing.T) {
	doc := New("app")
	app := doc.ElementByID("app")
	div := doc.CreateElement("div")
	btn := doc.CreateElement("button")
	btn.SetAttribute("id", "b")
	fired := 0
	btn.AddEventListener("click", func(dom.Event) { fired++ })
	div.AppendChild(btn)
	app.AppendChild(div)

	app.RemoveChild(div)
	assert.Nil(t, doc.ElementByID("b"))
	app.AppendChild(div)

	got := doc.ElementByID("b")
	require.NotNil(t, got)
	assert.Same(t, btn, dom.Element(got))
	got.Click()
	assert.Equal(t, 1, fired)
}

func TestAppendChild_MovesAttachedNode(t *testing.T) {
	doc := New("a", "b")
	a, b := doc.ElementByID("a"), doc.ElementByID("b")
	p := doc.CreateElement("p")

	a.AppendChild(p)
	b.AppendChild(p)

	assert.Equal(t, 0, a.ChildElementCount())
	assert.Equal(t, 1, b.ChildElementCount())
}

func TestRemoveChild_PanicsForStranger(t *testing.T) {
	doc := New("app")
	app := doc.ElementByID("app")
	assert.Panics(t, func() { app.RemoveChild(doc.CreateElement("p")) })
}

func TestAttributes(t *testing.T) {
	doc := New("app")
	el := doc.CreateElement("input")

	el.SetAttribute("ID", "a")
	el.SetAttribute("id", "b")
	v, ok := el.GetAttribute("id")
	require.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = el.GetAttribute("placeholder")
	assert.False(t, ok)

	e := el.(*Element)
	e.SetAutofocus(true)
	assert.True(t, e.Autofocus())
	e.SetAutofocus(false)
	assert.False(t, e.Autofocus())
}

func TestElementsByClassName(t *testing.T) {
	doc := New("app")
	app := doc.ElementByID("app")
	div := doc.CreateElement("div")
	div.SetAttribute("class", "item apptastic")
	app.AppendChild(div)
	detached := doc.CreateElement("div")
	detached.SetAttribute("class", "apptastic")

	found := doc.ElementsByClassName("apptastic")
	require.Len(t, found, 1)
	assert.Same(t, div, dom.Element(found[0]))
	assert.Len(t, doc.QuerySelectorAll(".item"), 1)
	assert.Nil(t, doc.QuerySelector("#nope"))
}

func TestFocus(t *testing.T) {
	doc := New("app")
	app := doc.ElementByID("app")

	input := doc.CreateElement("input").(*Element)
	input.Focus()
	assert.Nil(t, doc.ActiveElement(), "detached elements cannot take focus")

	app.AppendChild(input)
	input.Focus()
	assert.Same(t, input, doc.ActiveElement())

	div := doc.CreateElement("div").(*Element)
	app.AppendChild(div)
	div.Focus()
	assert.Same(t, input, doc.ActiveElement(), "plain div is not focusable")

	app.RemoveChild(input)
	assert.Nil(t, doc.ActiveElement())
}

func TestFocus_DispatchesOnlyWhenFocusMoves(t *testing.T) {
	doc := New("app")
	app := doc.ElementByID("app")
	input := doc.CreateElement("input").(*Element)
	app.AppendChild(input)
	focused := 0
	input.AddEventListener("focus", func(dom.Event) { focused++ })

	input.Focus()
	input.Focus()

	assert.Equal(t, 1, focused, "an element that already has focus gets no second event")
}

func TestClick_TogglesCheckboxAndDispatches(t *testing.T) {
	doc := New("app")
	box := doc.CreateElement("input").(*Element)
	box.SetAttribute("type", "checkbox")

	var got []dom.Event
	box.AddEventListener("click", func(ev dom.Event) { got = append(got, ev) })

	box.Click()
	assert.True(t, box.Checked())
	box.Click()
	assert.False(t, box.Checked())
	assert.Len(t, got, 2)
}

func TestInput_SetsValueAndDispatches(t *testing.T) {
	doc := New("app")
	in := doc.CreateElement("input").(*Element)
	var got string
	in.AddEventListener("input", func(ev dom.Event) { got = ev.Value })

	in.Input("buy milk")

	assert.Equal(t, "buy milk", got)
	assert.Equal(t, "buy milk", in.Value())
	assert.False(t, in.Dispatch("keyup"), "no keyup listeners")
}

func TestTimers(t *testing.T) {
	timers := NewTimers()
	var order []string
	timers.AfterFunc(200*time.Millisecond, func() { order = append(order, "late") })
	timers.AfterFunc(10*time.Millisecond, func() { order = append(order, "early") })
	timers.AfterFunc(10*time.Millisecond, func() { order = append(order, "early2") })

	assert.Equal(t, 2, timers.Advance(100*time.Millisecond))
	assert.Equal(t, []string{"early", "early2"}, order)
	assert.Equal(t, 1, timers.Pending())
	assert.Equal(t, 100*time.Millisecond, timers.Now())

	assert.Equal(t, 1, timers.Flush())
	assert.Equal(t, []string{"early", "early2", "late"}, order)
	assert.Equal(t, 0, timers.Pending())
}
