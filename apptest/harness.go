// Package apptest is a minimal test harness that mounts a program on an
// in-memory htmldom document, so application tests run without a browser
// or WASM.
//
// It lets tests:
// - mount a model/update/view triad
// - simulate clicks and typing on rendered elements
// - inspect the rendered container and the program's model
package apptest

import (
	"log/slog"
	"testing"

	"github.com/vcrobe/elmish/htmldom"
	"github.com/vcrobe/elmish/runtime"
)

// ContainerID is the id of the container every harness mounts into.
const ContainerID = "test-app"

// Harness holds a mounted program and the document it renders into.
type Harness[M, A any] struct {
	t         testing.TB
	Doc       *htmldom.Document
	Timers    *htmldom.Timers
	Program   *runtime.Program[M, A]
	Container *htmldom.Element
}

// Mount mounts the triad into a fresh document and fails the test if the
// mount fails. Logging is discarded unless opts supply a logger.
func Mount[M, A any](t testing.TB, initial M, update runtime.UpdateFunc[M, A], view runtime.ViewFunc[M, A], opts ...runtime.Option) *Harness[M, A] {
	t.Helper()

	doc := htmldom.New(ContainerID)
	timers := htmldom.NewTimers()
	all := append([]runtime.Option{
		runtime.WithLogger(slog.New(slog.DiscardHandler)),
		runtime.WithScheduler(timers),
	}, opts...)

	p, err := runtime.Mount(doc, initial, update, view, ContainerID, all...)
	if err != nil {
		t.Fatalf("Mount failed: %v", err)
	}

	return &Harness[M, A]{
		t:         t,
		Doc:       doc,
		Timers:    timers,
		Program:   p,
		Container: p.Container().(*htmldom.Element),
	}
}

// Find returns the first element matching "#id", ".class" or "tag", failing
// the test when there is none.
func (h *Harness[M, A]) Find(selector string) *htmldom.Element {
	h.t.Helper()
	el := h.Doc.QuerySelector(selector)
	if el == nil {
		h.t.Fatalf("No element matches %q in:\n%s", selector, h.HTML())
	}
	return el
}

// Click clicks the first element matching selector.
func (h *Harness[M, A]) Click(selector string) {
	h.t.Helper()
	h.Find(selector).Click()
}

// Input types value into the first element matching selector.
func (h *Harness[M, A]) Input(selector, value string) {
	h.t.Helper()
	h.Find(selector).Input(value)
}

// Text returns the container's text content.
func (h *Harness[M, A]) Text() string {
	return h.Container.TextContent()
}

// HTML returns the container's markup.
func (h *Harness[M, A]) HTML() string {
	return h.Container.InnerHTML()
}

// Model returns the program's current model.
func (h *Harness[M, A]) Model() M {
	return h.Program.Model()
}
