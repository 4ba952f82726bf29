package todo

import (
	"strconv"

	"github.com/vcrobe/elmish/events"
	"github.com/vcrobe/elmish/runtime"
	"github.com/vcrobe/elmish/vdom"
)

// View renders the header, the list and the footer.
func View(m Model, signal runtime.Signal[Action]) *vdom.VNode {
	app := vdom.Section([]string{"class=todoapp"}, header(m, signal))
	if len(m.Items) > 0 {
		app.Append(mainSection(m, signal), footer(m, signal))
	}
	return app
}

func header(m Model, signal runtime.Signal[Action]) *vdom.VNode {
	input := vdom.InputText([]string{
		"id=new-todo",
		"class=new-todo",
		"placeholder=What needs to be done?",
		"autofocus",
	}).OnValue(events.Input, func(v string) { signal(SetInput{Text: v})() })
	input.SetContent(m.Input)

	return vdom.Header([]string{"class=header"},
		vdom.Heading(1, "todos", nil),
		input,
		vdom.Button("Add", []string{"id=add", "class=add"}).On(events.Click, signal(Add{})),
	)
}

func mainSection(m Model, signal runtime.Signal[Action]) *vdom.VNode {
	toggleAll := vdom.Input([]string{"id=toggle-all", "class=toggle-all", "type=checkbox"}).
		On(events.Click, signal(ToggleAll{}))
	if m.Remaining() == 0 {
		vdom.ApplyAttributes([]string{"checked=true"}, toggleAll)
	}

	list := vdom.Ul([]string{"class=todo-list"})
	for _, it := range m.Visible() {
		list.Append(item(it, signal))
	}

	return vdom.Section([]string{"id=main", "class=main", "style=display: block;"},
		toggleAll,
		vdom.Label("Mark all as complete", []string{"for=toggle-all"}),
		list,
	)
}

func item(it Item, signal runtime.Signal[Action]) *vdom.VNode {
	id := strconv.Itoa(it.ID)
	toggle := vdom.Input([]string{"class=toggle", "type=checkbox", "id=toggle-" + id}).
		On(events.Click, signal(Toggle{ID: it.ID}))
	li := vdom.Li([]string{"data-id=" + id})
	if it.Done {
		vdom.ApplyAttributes([]string{"checked=true"}, toggle)
		vdom.ApplyAttributes([]string{"class=completed"}, li)
	}

	return li.Append(vdom.Div([]string{"class=view"},
		toggle,
		vdom.Label(it.Title, nil),
		vdom.Button("", []string{"class=destroy", "id=destroy-" + id}).On(events.Click, signal(Delete{ID: it.ID})),
	))
}

func footer(m Model, signal runtime.Signal[Action]) *vdom.VNode {
	left := m.Remaining()
	noun := "items"
	if left == 1 {
		noun = "item"
	}

	filters := vdom.Ul([]string{"class=filters"})
	for _, f := range []struct {
		filter Filter
		href   string
		label  string
	}{
		{All, "#/", "All"},
		{Active, "#/active", "Active"},
		{Completed, "#/completed", "Completed"},
	} {
		link := vdom.Link(f.label, []string{"href=" + f.href, "id=filter-" + string(f.filter)}).
			On(events.Click, signal(SetFilter{Filter: f.filter}))
		if m.Filter == f.filter {
			vdom.ApplyAttributes([]string{"class=selected"}, link)
		}
		filters.Append(vdom.Li(nil, link))
	}

	foot := vdom.Footer([]string{"class=footer"},
		vdom.Span(strconv.Itoa(left)+" "+noun+" left", []string{"class=todo-count"}),
		filters,
	)
	if len(m.Items) > left {
		foot.Append(vdom.Button("Clear completed", []string{"class=clear-completed"}).
			On(events.Click, signal(ClearCompleted{})))
	}
	return foot
}
