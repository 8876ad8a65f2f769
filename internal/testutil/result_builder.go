package testutil

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hupe1980/agentswarm/core"
)

// ResultBuilder provides a fluent helper for constructing agent results
// in tests. Example:
//
//	res := NewResultBuilder("researcher").Task("t-1").Output("done").Build()
//
// Chain only the parts you need; untouched fields stay at their zero
// values.
type ResultBuilder struct {
	res core.AgentResult
}

// NewResultBuilder creates a builder for a result attributed to the given
// agent.
func NewResultBuilder(agent string) *ResultBuilder {
	return &ResultBuilder{res: core.AgentResult{Agent: agent}}
}

// Task sets the task ID (chainable).
func (b *ResultBuilder) Task(id string) *ResultBuilder { b.res.TaskID = id; return b }

// Output sets the final text output (chainable).
func (b *ResultBuilder) Output(text string) *ResultBuilder { b.res.Output = text; return b }

// Data sets one structured data field (chainable).
func (b *ResultBuilder) Data(key string, value any) *ResultBuilder {
	if b.res.Data == nil {
		b.res.Data = map[string]any{}
	}
	b.res.Data[key] = value
	return b
}

// Usage sets token usage from prompt and completion counts (chainable).
func (b *ResultBuilder) Usage(prompt, completion int) *ResultBuilder {
	b.res.Usage = core.TokenUsage{
		PromptTokens:     prompt,
		CompletionTokens: completion,
		TotalTokens:      prompt + completion,
	}
	return b
}

// Cost sets the estimated spend from a decimal literal such as "0.25"
// (chainable). Panics on malformed input.
func (b *ResultBuilder) Cost(s string) *ResultBuilder {
	b.res.Cost = decimal.RequireFromString(s)
	return b
}

// Duration sets the execution duration (chainable).
func (b *ResultBuilder) Duration(d time.Duration) *ResultBuilder { b.res.Duration = d; return b }

// Build returns the constructed result. The builder may be reused;
// every call returns an independent copy.
func (b *ResultBuilder) Build() *core.AgentResult {
	res := b.res

	if res.Data != nil {
		data := make(map[string]any, len(res.Data))
		for k, v := range res.Data {
			data[k] = v
		}
		res.Data = data
	}

	return &res
}
