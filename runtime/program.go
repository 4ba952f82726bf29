// Package runtime mounts a model/update/view triad onto a container and
// re-renders it from scratch whenever a signal fires.
package runtime

import (
	"log/slog"

	"github.com/vcrobe/elmish/cell"
	"github.com/vcrobe/elmish/dom"
	"github.com/vcrobe/elmish/vdom"
)

// UpdateFunc computes the next model. It must be pure.
type UpdateFunc[M, A any] func(action A, model M) M

// ViewFunc renders a model. It may call signal to build callbacks for
// interactive nodes but must not invoke them while rendering.
type ViewFunc[M, A any] func(model M, signal Signal[A]) *vdom.VNode

// Signal binds an action to a zero-argument callback that runs one full
// update-render cycle when invoked.
type Signal[A any] func(action A) func()

type state int

const (
	unmounted state = iota
	mounted
)

func (s state) String() string {
	if s == mounted {
		return "mounted"
	}
	return "unmounted"
}

// Program is one mounted application: the container and the current model
// belong to it alone, so independent programs can share a document.
type Program[M, A any] struct {
	update   UpdateFunc[M, A]
	view     ViewFunc[M, A]
	doc      dom.Document
	renderer *vdom.Renderer
	logger   *slog.Logger

	state       state
	containerID string
	container   dom.Element
	model       *cell.Cell[M]
	rendering   bool
	cycles      int
}

// New creates an unmounted Program.
func New[M, A any](doc dom.Document, update UpdateFunc[M, A], view ViewFunc[M, A], opts ...Option) *Program[M, A] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var zero M
	return &Program[M, A]{
		update:   update,
		view:     view,
		doc:      doc,
		renderer: vdom.NewRenderer(doc, o.scheduler, o.focusDelay, o.logger),
		logger:   o.logger,
		model:    cell.New(zero),
	}
}

// Mount creates a Program and mounts it in one call.
func Mount[M, A any](doc dom.Document, initial M, update UpdateFunc[M, A], view ViewFunc[M, A], containerID string, opts ...Option) (*Program[M, A], error) {
	p := New(doc, update, view, opts...)
	if err := p.Mount(initial, containerID); err != nil {
		return nil, err
	}
	return p, nil
}

// Mount resolves the container and performs the initial render. It returns
// a *MountError when the container is missing or the program is already
// mounted; in both cases nothing is rendered.
func (p *Program[M, A]) Mount(initial M, containerID string) error {
	if p.state == mounted {
		return &MountError{ContainerID: containerID, Err: ErrAlreadyMounted}
	}

	container := p.doc.GetElementByID(containerID)
	if container == nil {
		p.logger.Error("Mount element not found", "container", containerID)
		return &MountError{ContainerID: containerID, Err: ErrContainerNotFound}
	}

	defer p.observePanic("mount")

	p.container = container
	p.containerID = containerID
	p.render(initial)
	p.state = mounted
	p.model.Set(initial)

	p.logger.Info("Program mounted", "container", containerID)
	return nil
}

// Signal implements the Signal type for this program. The returned callback
// reads the model when it runs, so it always starts from the latest state.
func (p *Program[M, A]) Signal(action A) func() {
	return func() {
		p.cycle(action)
	}
}

// cycle runs update, clears the container and renders the new model.
// Panics from update or view propagate: the container keeps its old content
// if update fails and is left empty if view fails. The model is only stored
// once the new tree is in the container.
func (p *Program[M, A]) cycle(action A) {
	if p.rendering {
		panic(ErrReentrantSignal)
	}
	if p.state != mounted {
		p.logger.Error("Signal fired before mount, ignoring", "state", p.state.String())
		return
	}

	defer p.observePanic("cycle")

	next := p.update(action, p.model.Get())
	vdom.Clear(p.container)
	p.render(next)

	p.cycles++
	p.model.Set(next)
	p.logger.Debug("Cycle complete", "container", p.containerID, "cycle", p.cycles)
}

// render covers the view call and the materialization, focus included:
// a host may run focus listeners synchronously.
func (p *Program[M, A]) render(m M) {
	p.rendering = true
	defer func() { p.rendering = false }()
	p.renderer.RenderTo(p.container, p.view(m, p.Signal))
}

// Model returns the current model.
func (p *Program[M, A]) Model() M {
	return p.model.Get()
}

// Mounted reports whether Mount has succeeded.
func (p *Program[M, A]) Mounted() bool {
	return p.state == mounted
}

// Container returns the container, or nil before mount.
func (p *Program[M, A]) Container() dom.Element {
	return p.container
}

// Cycles counts completed signal cycles; the initial render is not one.
func (p *Program[M, A]) Cycles() int {
	return p.cycles
}

// Subscribe registers fn to run with the model after the initial render and
// after every completed cycle.
func (p *Program[M, A]) Subscribe(fn func(M)) (unsubscribe func()) {
	return p.model.Subscribe(fn)
}
