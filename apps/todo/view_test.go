//go:build !wasm
// +build !wasm

package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/elmish/apptest"
)

func TestTodo_EmptyListHidesMainAndFooter(t *testing.T) {
	h := apptest.Mount(t, New(), Update, View)

	assert.Nil(t, h.Doc.QuerySelector("#main"))
	assert.Nil(t, h.Doc.QuerySelector(".footer"))
	assert.Same(t, h.Find("#new-todo"), h.Doc.ActiveElement(), "new-todo input is autofocused")
}

func TestTodo_TypeAndAdd(t *testing.T) {
	h := apptest.Mount(t, New(), Update, View)

	h.Input("#new-todo", "Learn Elm Architecture")
	assert.Equal(t, "Learn Elm Architecture", h.Find("#new-todo").Value(), "input keeps the typed text across re-renders")
	h.Click("#add")

	labels := h.Doc.QuerySelectorAll("label")
	require.Len(t, labels, 2)
	assert.Equal(t, "Learn Elm Architecture", labels[1].TextContent())
	assert.Equal(t, "", h.Find("#new-todo").Value())
	assert.Equal(t, "1 item left", h.Find(".todo-count").TextContent())

	style, _ := h.Find("#main").GetAttribute("style")
	assert.Equal(t, "display: block;", style)
}

func TestTodo_ToggleMarksCompleted(t *testing.T) {
	h := apptest.Mount(t, New("walk dog", "buy milk"), Update, View)

	h.Click("#toggle-2")

	li := h.Doc.ElementsByClassName("completed")
	require.Len(t, li, 1)
	id, _ := li[0].GetAttribute("data-id")
	assert.Equal(t, "2", id)
	assert.True(t, h.Find("#toggle-2").Checked())
	assert.False(t, h.Find("#toggle-1").Checked())
	assert.Equal(t, "1 item left", h.Find(".todo-count").TextContent())
	assert.NotNil(t, h.Doc.QuerySelector(".clear-completed"))
}

func TestTodo_ToggleAllAndClearCompleted(t *testing.T) {
	h := apptest.Mount(t, New("a", "b"), Update, View)

	h.Click("#toggle-all")
	assert.True(t, h.Find("#toggle-all").Checked())
	assert.Len(t, h.Doc.ElementsByClassName("completed"), 2)

	h.Click(".clear-completed")
	assert.Equal(t, 0, len(h.Model().Items))
	assert.Nil(t, h.Doc.QuerySelector("#main"))
}

func TestTodo_FiltersAndDelete(t *testing.T) {
	h := apptest.Mount(t, Update(Toggle{ID: 1}, New("done", "open")), Update, View)

	h.Click("#filter-active")
	assert.Len(t, h.Doc.ElementsByClassName("toggle"), 1)
	cls, _ := h.Find("#filter-active").GetAttribute("class")
	assert.Equal(t, "selected", cls)

	h.Click("#filter-completed")
	assert.Len(t, h.Doc.ElementsByClassName("toggle"), 1)
	h.Click("#destroy-1")
	assert.Len(t, h.Doc.ElementsByClassName("toggle"), 0)

	h.Click("#filter-all")
	assert.Len(t, h.Doc.ElementsByClassName("toggle"), 1)
	href, _ := h.Find("#filter-active").GetAttribute("href")
	assert.Equal(t, "#/active", href)
}
