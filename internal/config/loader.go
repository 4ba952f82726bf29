package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vcrobe/elmish/internal/ctxlog"
)

// ErrInvalid wraps every semantic problem found in a scenario.
var ErrInvalid = errors.New("invalid scenario")

// fileRoot is the HCL shape of a scenario file.
type fileRoot struct {
	App              string         `hcl:"app"`
	Container        *string        `hcl:"container,optional"`
	FocusDelay       *string        `hcl:"focus_delay,optional"`
	Model            hcl.Expression `hcl:"model,optional"`
	Page             *string        `hcl:"page,optional"`
	SnapshotEachStep *bool          `hcl:"snapshot_each_step,optional"`
	Steps            []*stepBlock   `hcl:"step,block"`
}

type stepBlock struct {
	Kind   string  `hcl:"kind,label"`
	Target string  `hcl:"target"`
	Value  *string `hcl:"value,optional"`
}

// Load reads and decodes the scenario file at path.
func Load(ctx context.Context, path string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading scenario.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(ctx, file.Body, path)
}

// Parse decodes scenario source held in memory. filename is only used in
// diagnostics.
func Parse(ctx context.Context, src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(ctx, file.Body, filename)
}

func decode(ctx context.Context, body hcl.Body, filename string) (*Scenario, error) {
	logger := ctxlog.FromContext(ctx)

	var root fileRoot
	if diags := gohcl.DecodeBody(body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	model, diags := root.Model.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate model in %s: %w", filename, diags)
	}

	sc := &Scenario{
		App:       root.App,
		Container: DefaultContainer,
		Model:     model,
	}
	if sc.App == "" {
		return nil, fmt.Errorf("%w: %s: app must not be empty", ErrInvalid, filename)
	}
	if root.Container != nil {
		if *root.Container == "" {
			return nil, fmt.Errorf("%w: %s: container must not be empty", ErrInvalid, filename)
		}
		sc.Container = *root.Container
	}
	if root.FocusDelay != nil {
		d, err := time.ParseDuration(*root.FocusDelay)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("%w: %s: focus_delay %q is not a non-negative duration", ErrInvalid, filename, *root.FocusDelay)
		}
		sc.FocusDelay = &d
	}
	if root.Page != nil {
		sc.Page = *root.Page
	}
	if root.SnapshotEachStep != nil {
		sc.SnapshotEachStep = *root.SnapshotEachStep
	}

	for i, b := range root.Steps {
		step, err := translateStep(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: step %d: %v", ErrInvalid, filename, i+1, err)
		}
		sc.Steps = append(sc.Steps, step)
	}

	logger.Debug("Scenario decoded.", "app", sc.App, "container", sc.Container, "steps", len(sc.Steps))
	return sc, nil
}

func translateStep(b *stepBlock) (Step, error) {
	if b.Target == "" {
		return Step{}, errors.New("target must not be empty")
	}
	step := Step{Kind: StepKind(b.Kind), Target: b.Target}
	switch step.Kind {
	case StepClick:
		if b.Value != nil {
			return Step{}, errors.New("click steps take no value")
		}
	case StepInput:
		if b.Value == nil {
			return Step{}, errors.New("input steps need a value")
		}
		step.Value = *b.Value
	default:
		return Step{}, fmt.Errorf("unknown step kind %q", b.Kind)
	}
	return step, nil
}
