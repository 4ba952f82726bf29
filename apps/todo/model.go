// Package todo is a TodoMVC-style list built on the runtime.
package todo

// Item is one todo entry.
type Item struct {
	ID    int
	Title string
	Done  bool
}

// Filter selects which items are listed.
type Filter string

const (
	All       Filter = "all"
	Active    Filter = "active"
	Completed Filter = "completed"
)

// Model is the whole application state.
type Model struct {
	Items  []Item
	Input  string
	NextID int
	Filter Filter
}

// New returns a model holding the given titles as open items.
func New(titles ...string) Model {
	m := Model{Filter: All, NextID: 1}
	for _, title := range titles {
		m.Items = append(m.Items, Item{ID: m.NextID, Title: title})
		m.NextID++
	}
	return m
}

// Visible returns the items the current filter shows.
func (m Model) Visible() []Item {
	var out []Item
	for _, it := range m.Items {
		switch {
		case m.Filter == Active && it.Done:
		case m.Filter == Completed && !it.Done:
		default:
			out = append(out, it)
		}
	}
	return out
}

// Remaining counts open items.
func (m Model) Remaining() int {
	n := 0
	for _, it := range m.Items {
		if !it.Done {
			n++
		}
	}
	return n
}
