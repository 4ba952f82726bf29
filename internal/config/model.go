package config

import (
	"time"

	"github.com/zclconf/go-cty/cty"
)

// DefaultContainer is used when a scenario names no container.
const DefaultContainer = "app"

// StepKind is what a step does to its target.
type StepKind string

const (
	StepClick StepKind = "click"
	StepInput StepKind = "input"
)

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	App       string
	Container string
	// FocusDelay is nil when the scenario leaves the runtime default.
	FocusDelay *time.Duration
	// Page is optional host markup. It must contain the container; when
	// empty the app mounts on a blank page holding only the container.
	Page string
	// Model is the initial model, null when absent. Each application decodes
	// it into its own model type.
	Model            cty.Value
	SnapshotEachStep bool
	Steps            []Step
}

// Step is one simulated user interaction.
type Step struct {
	Kind   StepKind
	Target string // "#id", ".class" or "tag"
	Value  string // for input steps
}
