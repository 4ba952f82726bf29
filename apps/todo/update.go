package todo

import "strings"

// Action is implemented by every todo action.
type Action interface {
	isAction()
}

type (
	// SetInput tracks the text typed into the new-todo field.
	SetInput struct{ Text string }
	// Add appends the typed text as a new item.
	Add struct{}
	// Toggle flips one item.
	Toggle struct{ ID int }
	// ToggleAll marks everything done, or everything open when all are done.
	ToggleAll struct{}
	// Delete removes one item.
	Delete struct{ ID int }
	// ClearCompleted removes every done item.
	ClearCompleted struct{}
	// SetFilter changes the listed subset.
	SetFilter struct{ Filter Filter }
)

func (SetInput) isAction()       {}
func (Add) isAction()            {}
func (Toggle) isAction()         {}
func (ToggleAll) isAction()      {}
func (Delete) isAction()         {}
func (ClearCompleted) isAction() {}
func (SetFilter) isAction()      {}

// Update handles all state transitions. It never mutates the incoming
// model's item slice.
func Update(action Action, m Model) Model {
	switch a := action.(type) {
	case SetInput:
		m.Input = a.Text

	case Add:
		title := strings.TrimSpace(m.Input)
		if title == "" {
			break
		}
		if m.NextID == 0 {
			m.NextID = 1
		}
		m.Items = append(cloneItems(m.Items), Item{ID: m.NextID, Title: title})
		m.NextID++
		m.Input = ""

	case Toggle:
		items := cloneItems(m.Items)
		for i := range items {
			if items[i].ID == a.ID {
				items[i].Done = !items[i].Done
				break
			}
		}
		m.Items = items

	case ToggleAll:
		done := m.Remaining() > 0
		items := cloneItems(m.Items)
		for i := range items {
			items[i].Done = done
		}
		m.Items = items

	case Delete:
		m.Items = filterItems(m.Items, func(it Item) bool { return it.ID != a.ID })

	case ClearCompleted:
		m.Items = filterItems(m.Items, func(it Item) bool { return !it.Done })

	case SetFilter:
		m.Filter = a.Filter
	}

	return m
}

func cloneItems(items []Item) []Item {
	return append([]Item(nil), items...)
}

func filterItems(items []Item, keep func(Item) bool) []Item {
	var out []Item
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
