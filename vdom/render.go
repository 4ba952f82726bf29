package vdom

import (
	"log/slog"
	"sort"
	"time"

	"github.com/vcrobe/elmish/dom"
)

// DefaultFocusDelay is how long the renderer waits before focusing an
// autofocus element a second time. Some hosts move focus after mount.
const DefaultFocusDelay = 200 * time.Millisecond

// Renderer turns VNode trees into host nodes.
type Renderer struct {
	doc        dom.Document
	scheduler  dom.Scheduler
	focusDelay time.Duration
	logger     *slog.Logger
}

// NewRenderer creates a renderer on doc. A nil scheduler disables the
// deferred autofocus; a nil logger uses slog.Default().
func NewRenderer(doc dom.Document, scheduler dom.Scheduler, focusDelay time.Duration, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		doc:        doc,
		scheduler:  scheduler,
		focusDelay: focusDelay,
		logger:     logger,
	}
}

// Clear removes every child of container. The container itself stays.
func Clear(container dom.Node) {
	if container == nil {
		return
	}
	for child := container.LastChild(); child != nil; child = container.LastChild() {
		container.RemoveChild(child)
	}
}

// RenderTo appends the rendered node to a specific mount element, then
// focuses any autofocus elements in it.
func (r *Renderer) RenderTo(mount dom.Node, n *VNode) {
	if mount == nil || n == nil {
		return
	}

	var focus []dom.Element
	el := r.createNode(n, &focus)
	if el == nil {
		r.logger.Debug("View produced no host node", "tag", n.Tag)
		return
	}
	mount.AppendChild(el)

	for _, f := range focus {
		f.Focus()
		if r.scheduler != nil {
			r.scheduler.AfterFunc(r.focusDelay, f.Focus)
		}
	}
}

func (r *Renderer) createNode(n *VNode, focus *[]dom.Element) dom.Node {
	if n == nil {
		return nil
	}

	if n.Tag == TextTag {
		if n.Content == "" {
			return nil
		}
		return r.doc.CreateTextNode(n.Content)
	}

	if n.Skipped != nil {
		r.logger.Warn("Skipping attribute directives", "tag", n.Tag, "error", n.Skipped)
	}

	el := r.doc.CreateElement(n.Tag)
	applyToElement(el, n)
	if n.Autofocus {
		*focus = append(*focus, el)
	}
	attachEventListeners(el, n.Handlers)

	switch n.Tag {
	case "input", "textarea":
		if n.Content != "" {
			el.SetAttribute("value", n.Content)
		}
	default:
		if n.Content != "" {
			el.AppendChild(r.doc.CreateTextNode(n.Content))
		}
	}

	for _, child := range n.Children {
		if c := r.createNode(child, focus); c != nil {
			el.AppendChild(c)
		}
	}
	return el
}

// applyToElement copies the node's directives onto the host element. Bare
// flags are set with an empty value, the way HTML spells boolean attributes.
func applyToElement(el dom.Element, n *VNode) {
	for _, a := range n.Attrs {
		if a.Flag {
			el.SetAttribute(a.Key, "")
			continue
		}
		el.SetAttribute(a.Key, a.Value)
	}
	if n.Autofocus {
		el.SetAutofocus(true)
	}
}

// attachEventListeners registers handlers in event-name order.
func attachEventListeners(el dom.Element, handlers map[string]func(dom.Event)) {
	if len(handlers) == 0 {
		return
	}
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		el.AddEventListener(name, handlers[name])
	}
}
