// Package replay mounts a scenario's application on an in-memory document,
// replays its steps and writes the rendered markup.
package replay

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vcrobe/elmish/htmldom"
	"github.com/vcrobe/elmish/internal/config"
	"github.com/vcrobe/elmish/internal/ctxlog"
	"github.com/vcrobe/elmish/runtime"
)

// Run replays sc and writes the container markup to w: once at the end, or
// after the initial render and every step when sc.SnapshotEachStep is set.
// Snapshots are separated by a "<!-- step N -->" comment line.
func Run(ctx context.Context, sc *config.Scenario, w io.Writer) error {
	logger := ctxlog.FromContext(ctx)

	mount, ok := apps[sc.App]
	if !ok {
		return fmt.Errorf("unknown app %q, expected one of %v", sc.App, Apps())
	}

	doc, err := newDocument(sc)
	if err != nil {
		return err
	}
	timers := htmldom.NewTimers()
	opts := []runtime.Option{
		runtime.WithLogger(logger.With("app", sc.App)),
		runtime.WithScheduler(timers),
	}
	if sc.FocusDelay != nil {
		opts = append(opts, runtime.WithFocusDelay(*sc.FocusDelay))
	}

	if err := mount(doc, sc.Model, sc.Container, opts...); err != nil {
		return fmt.Errorf("failed to mount %s: %w", sc.App, err)
	}
	container := doc.ElementByID(sc.Container)
	timers.Flush()

	if sc.SnapshotEachStep {
		if err := snapshot(w, 0, container); err != nil {
			return err
		}
	}

	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := apply(doc, step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		ran := timers.Flush()
		logger.Debug("Step replayed.", "step", i+1, "kind", step.Kind, "target", step.Target, "timers", ran)

		if sc.SnapshotEachStep {
			if err := snapshot(w, i+1, container); err != nil {
				return err
			}
		}
	}

	if !sc.SnapshotEachStep {
		if _, err := fmt.Fprintln(w, container.InnerHTML()); err != nil {
			return err
		}
	}
	logger.Info("Scenario replayed.", "app", sc.App, "steps", len(sc.Steps))
	return nil
}

func newDocument(sc *config.Scenario) (*htmldom.Document, error) {
	if sc.Page == "" {
		return htmldom.New(sc.Container), nil
	}
	return htmldom.Parse(strings.NewReader(sc.Page))
}

func apply(doc *htmldom.Document, step config.Step) error {
	el := doc.QuerySelector(step.Target)
	if el == nil {
		return fmt.Errorf("no element matches %q", step.Target)
	}
	switch step.Kind {
	case config.StepClick:
		el.Click()
	case config.StepInput:
		el.Input(step.Value)
	default:
		return fmt.Errorf("unsupported step kind %q", step.Kind)
	}
	return nil
}

func snapshot(w io.Writer, n int, container *htmldom.Element) error {
	_, err := fmt.Fprintf(w, "<!-- step %d -->\n%s\n", n, container.InnerHTML())
	return err
}
