package vdom

import (
	"errors"

	"github.com/vcrobe/elmish/attr"
)

// ApplyAttributes applies the directives to n in order and returns n, so it
// composes with the tree builders:
//
//	div := vdom.ApplyAttributes([]string{"class=item", "id=mydiv"}, vdom.Div(nil))
//
// A nil or empty list is a no-op. A later directive for a key overwrites the
// earlier one. "autofocus" sets n.Autofocus; the renderer focuses the element
// once it is mounted. Directives without a key are skipped and recorded in
// n.Skipped.
func ApplyAttributes(directives []string, n *VNode) *VNode {
	if n == nil || len(directives) == 0 {
		return n
	}
	parsed, err := attr.ParseAll(directives)
	for _, d := range parsed {
		n.setDirective(d)
	}
	if err != nil {
		n.Skipped = errors.Join(n.Skipped, err)
	}
	return n
}

func (v *VNode) setDirective(d attr.Directive) {
	if d.IsAutofocus() {
		v.Autofocus = true
		return
	}
	for i := range v.Attrs {
		if v.Attrs[i].Key == d.Key {
			v.Attrs[i] = d
			return
		}
	}
	v.Attrs = append(v.Attrs, d)
}
