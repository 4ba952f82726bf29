// Package cell provides the explicit mutable cell a Program keeps its
// current model in.
package cell

// Cell[T] holds one value and notifies subscribers when it is replaced.
// It is not safe for concurrent use; the runtime is single threaded.
type Cell[T any] struct {
	value  T
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// New creates a Cell with an initial value. No subscriber is notified.
func New[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set replaces the value and notifies all subscribers in subscription order.
func (c *Cell[T]) Set(v T) {
	c.value = v
	subs := make([]subscriber[T], len(c.subs))
	copy(subs, c.subs)
	for _, s := range subs {
		s.fn(v)
	}
}

// Subscribe registers a callback fired after every Set.
// Returns an unsubscribe func; calling it more than once is harmless.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscriber[T]{id: id, fn: fn})

	return func() {
		for i, s := range c.subs {
			if s.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}
