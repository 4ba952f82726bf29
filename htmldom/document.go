// Package htmldom is an in-memory host for the runtime, built on the
// golang.org/x/net/html node tree. It needs neither a browser nor WASM, so
// tests and command line tools render through it.
package htmldom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vcrobe/elmish/dom"
)

// Compile-time assertion that Document satisfies the host interface.
var _ dom.Document = (*Document)(nil)

// Document owns an html.Node tree and the wrappers handed out for it.
type Document struct {
	root   *html.Node
	body   *html.Node
	nodes  map[*html.Node]*Element
	active *html.Node
}

// New creates an empty page whose body holds one <div> per container id.
func New(containerIDs ...string) *Document {
	root := &html.Node{Type: html.DocumentNode}
	htmlEl := &html.Node{Type: html.ElementNode, Data: "html", DataAtom: atom.Html}
	head := &html.Node{Type: html.ElementNode, Data: "head", DataAtom: atom.Head}
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	root.AppendChild(htmlEl)
	htmlEl.AppendChild(head)
	htmlEl.AppendChild(body)

	d := newDocument(root)
	d.body = body
	for _, id := range containerIDs {
		div := d.createElement("div")
		div.SetAttribute("id", id)
		body.AppendChild(div.n)
	}
	return d
}

// Parse builds a document from HTML markup.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	d := newDocument(root)
	d.body = findFirst(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == atom.Body
	})
	return d, nil
}

func newDocument(root *html.Node) *Document {
	return &Document{
		root:  root,
		nodes: make(map[*html.Node]*Element),
	}
}

// wrap returns the canonical wrapper for n so identity comparisons hold.
func (d *Document) wrap(n *html.Node) *Element {
	if n == nil {
		return nil
	}
	if e, ok := d.nodes[n]; ok {
		return e
	}
	e := &Element{doc: d, n: n}
	d.nodes[n] = e
	return e
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) dom.Element {
	return d.createElement(tag)
}

func (d *Document) createElement(tag string) *Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// release takes the wrappers of c's subtree out of the index so a removed
// subtree, listeners included, can be collected. They are kept on c and
// return if c is appended again.
func (d *Document) release(c *Element) {
	c.detached = make(map[*html.Node]*Element)
	walk(c.n, func(n *html.Node) bool {
		if e, ok := d.nodes[n]; ok {
			c.detached[n] = e
			delete(d.nodes, n)
		}
		if n == d.active {
			d.active = nil
		}
		return true
	})
}

func (d *Document) adopt(c *Element) {
	for n, e := range c.detached {
		d.nodes[n] = e
	}
	c.detached = nil
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) dom.Node {
	return d.wrap(&html.Node{Type: html.TextNode, Data: text})
}

// GetElementByID returns nil when no connected element has the id.
func (d *Document) GetElementByID(id string) dom.Element {
	if e := d.ElementByID(id); e != nil {
		return e
	}
	return nil
}

// ElementByID is GetElementByID with the concrete type.
func (d *Document) ElementByID(id string) *Element {
	n := findFirst(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attrValue(n, "id") == id
	})
	return d.wrap(n)
}

// ElementsByClassName returns connected elements carrying class, in
// document order.
func (d *Document) ElementsByClassName(class string) []*Element {
	return d.collect(d.root, func(n *html.Node) bool {
		return hasClass(n, class)
	})
}

// ElementsByTagName returns connected elements with the tag, in document order.
func (d *Document) ElementsByTagName(tag string) []*Element {
	tag = strings.ToLower(tag)
	return d.collect(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	})
}

// QuerySelector supports the three simple forms "#id", ".class" and "tag".
func (d *Document) QuerySelector(selector string) *Element {
	all := d.QuerySelectorAll(selector)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// QuerySelectorAll is QuerySelector returning every match.
func (d *Document) QuerySelectorAll(selector string) []*Element {
	selector = strings.TrimSpace(selector)
	switch {
	case selector == "":
		return nil
	case strings.HasPrefix(selector, "#"):
		if e := d.ElementByID(selector[1:]); e != nil {
			return []*Element{e}
		}
		return nil
	case strings.HasPrefix(selector, "."):
		return d.ElementsByClassName(selector[1:])
	default:
		return d.ElementsByTagName(selector)
	}
}

// ActiveElement returns the focused element, or nil. A focused element that
// has since left the document no longer counts.
func (d *Document) ActiveElement() *Element {
	if d.active == nil || !d.connected(d.active) {
		return nil
	}
	return d.wrap(d.active)
}

// Body returns the <body> element, or nil for fragments without one.
func (d *Document) Body() *Element {
	return d.wrap(d.body)
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the document markup.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (d *Document) connected(n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == d.root {
			return true
		}
	}
	return false
}

func (d *Document) collect(from *html.Node, match func(*html.Node) bool) []*Element {
	var out []*Element
	walk(from, func(n *html.Node) bool {
		if match(n) {
			out = append(out, d.wrap(n))
		}
		return true
	})
	return out
}

// walk visits n and its descendants depth first until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func findFirst(from *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(from, func(n *html.Node) bool {
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

func attrValue(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode || class == "" {
		return false
	}
	for _, c := range strings.Fields(attrValue(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
