// Package tool implements the function / tool calling subsystem that lets
// agents expose structured capabilities (APIs, computations, side-effects)
// to their models. The delegation engine never executes tools itself; it
// forwards definitions to the model and surfaces requested calls on the
// agent result, leaving execution to the caller.
package tool

import (
	"context"

	"github.com/hupe1980/agentswarm/model"
)

// Tool defines the interface for capabilities an agent can expose to its model.
//
// Tool implementations should:
//   - Provide clear, descriptive names and descriptions
//   - Define proper JSON schema for parameters
//   - Handle errors gracefully
//   - Be thread-safe if used concurrently
type Tool interface {
	// Name returns the unique identifier for this tool.
	// Names should be descriptive and follow function naming conventions (snake_case recommended).
	Name() string

	// Description returns a human-readable description of what this tool does.
	// This description is provided to the LLM to help it understand when and how to use the tool.
	Description() string

	// Parameters returns a JSON schema describing the expected input format.
	Parameters() map[string]any

	// Call executes the tool with arguments parsed from a model tool call.
	Call(ctx context.Context, args map[string]any) (any, error)
}

// Definitions converts tools into the normalized definition format passed to
// model providers.
func Definitions(tools []Tool) []model.ToolDefinition {
	if len(tools) == 0 {
		return nil
	}

	defs := make([]model.ToolDefinition, len(tools))
	for i, t := range tools {
		defs[i] = model.ToolDefinition{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		}
	}

	return defs
}
