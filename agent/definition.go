package agent

import (
	"errors"
	"fmt"

	"github.com/hupe1980/agentswarm/model"
	"github.com/hupe1980/agentswarm/tool"
)

// defaultMaxHistory bounds how many transcript messages are replayed to the
// model when a definition does not set its own limit.
const defaultMaxHistory = 20

// Definition describes a named agent the registry can execute. One
// definition serves many tasks; all per-task state lives in the session
// keyed by the task ID.
type Definition struct {
	// Name is the unique identifier tasks reference.
	Name string

	// Description is a human-readable summary of the agent's purpose.
	Description string

	// Instruction produces the system prompt. Static text is rendered as a
	// template over session state before each execution; the zero value
	// falls back to a generic assistant prompt.
	Instruction Instruction

	// Model drives text generation for this agent.
	Model model.Model

	// Tools is the set of tools exposed to the model.
	Tools []tool.Tool

	// Pricing overrides the built-in price table for cost accounting.
	// The zero value means look the model up in model.DefaultPricing.
	Pricing model.Pricing

	// OutputKey, when set, stores the final output text into session state
	// under this key.
	OutputKey string

	// MaxHistory limits how many transcript messages are replayed.
	// Zero means the package default.
	MaxHistory int

	// EnableStreaming asks the model for streamed partials. The runner
	// only consumes the final response either way.
	EnableStreaming bool
}

// Validate reports whether the definition can be registered.
func (d *Definition) Validate() error {
	switch {
	case d == nil:
		return errors.New("agent: definition must not be nil")
	case d.Name == "":
		return errors.New("agent: definition name must not be empty")
	case d.Model == nil:
		return fmt.Errorf("agent %s: model must not be nil", d.Name)
	}

	return nil
}

// pricing resolves the effective price table for this definition.
func (d *Definition) pricing() model.Pricing {
	if !d.Pricing.InputPerMTok.IsZero() || !d.Pricing.OutputPerMTok.IsZero() {
		return d.Pricing
	}

	return model.PricingFor(d.Model.Info().Name)
}

// maxHistory resolves the effective transcript replay limit.
func (d *Definition) maxHistory() int {
	if d.MaxHistory > 0 {
		return d.MaxHistory
	}

	return defaultMaxHistory
}
