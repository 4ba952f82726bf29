package replay

import (
	"fmt"
	"slices"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vcrobe/elmish/apps/counter"
	"github.com/vcrobe/elmish/apps/todo"
	"github.com/vcrobe/elmish/dom"
	"github.com/vcrobe/elmish/runtime"
)

// mountFunc decodes the scenario model for one application and mounts it.
type mountFunc func(doc dom.Document, model cty.Value, containerID string, opts ...runtime.Option) error

var apps = map[string]mountFunc{
	"counter": mountCounter,
	"todo":    mountTodo,
}

// Apps lists the application names a scenario may use.
func Apps() []string {
	names := make([]string, 0, len(apps))
	for name := range apps {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func mountCounter(doc dom.Document, model cty.Value, containerID string, opts ...runtime.Option) error {
	initial, err := decodeCounter(model)
	if err != nil {
		return err
	}
	_, err = runtime.Mount(doc, initial, counter.Update, counter.View, containerID, opts...)
	return err
}

func mountTodo(doc dom.Document, model cty.Value, containerID string, opts ...runtime.Option) error {
	initial, err := decodeTodo(model)
	if err != nil {
		return err
	}
	_, err = runtime.Mount(doc, initial, todo.Update, todo.View, containerID, opts...)
	return err
}

// decodeCounter accepts a whole number; null means zero.
func decodeCounter(v cty.Value) (int, error) {
	if v.IsNull() {
		return 0, nil
	}
	var n int
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return 0, fmt.Errorf("counter model must be a whole number: %w", err)
	}
	return n, nil
}

// decodeTodo accepts a list of titles or of { title, done } objects.
func decodeTodo(v cty.Value) (todo.Model, error) {
	m := todo.New()
	if v.IsNull() {
		return m, nil
	}
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() {
		return m, fmt.Errorf("todo model must be a list, got %s", ty.FriendlyName())
	}

	for it := v.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		item, err := decodeTodoItem(elem)
		if err != nil {
			return m, err
		}
		item.ID = m.NextID
		m.Items = append(m.Items, item)
		m.NextID++
	}
	return m, nil
}

func decodeTodoItem(v cty.Value) (todo.Item, error) {
	if v.IsNull() {
		return todo.Item{}, fmt.Errorf("todo items must not be null")
	}
	switch ty := v.Type(); {
	case ty.Equals(cty.String):
		return todo.Item{Title: v.AsString()}, nil
	case ty.IsObjectType():
		if !ty.HasAttribute("title") {
			return todo.Item{}, fmt.Errorf("todo item needs a title")
		}
		var item todo.Item
		if err := gocty.FromCtyValue(v.GetAttr("title"), &item.Title); err != nil {
			return item, fmt.Errorf("todo title: %w", err)
		}
		if ty.HasAttribute("done") {
			if err := gocty.FromCtyValue(v.GetAttr("done"), &item.Done); err != nil {
				return item, fmt.Errorf("todo done: %w", err)
			}
		}
		return item, nil
	default:
		return todo.Item{}, fmt.Errorf("todo item must be a string or object, got %s", ty.FriendlyName())
	}
}
