package core

import (
	"time"

	"github.com/shopspring/decimal"
)

// TokenUsage captures token usage statistics for one or more model calls.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another usage into this one.
func (u *TokenUsage) Add(other TokenUsage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// AgentResult is the outcome of one successful agent execution.
type AgentResult struct {
	// TaskID identifies the execution. It doubles as the session ID the
	// agent ran under.
	TaskID string `json:"task_id"`

	// Agent is the name of the agent that produced the result.
	Agent string `json:"agent"`

	// Output is the agent's final text response.
	Output string `json:"output"`

	// Data holds structured fields the agent emitted alongside its text
	// output. Convergence evidence keys are resolved against the JSON form
	// of the whole result, so nested Data fields are addressable.
	Data map[string]any `json:"data,omitempty"`

	// Usage is the token consumption of the execution.
	Usage TokenUsage `json:"usage"`

	// Cost is the estimated spend for the execution, derived from Usage
	// and the model's pricing.
	Cost decimal.Decimal `json:"cost"`

	// Duration is how long the execution took.
	Duration time.Duration `json:"duration"`
}

// DelegationResult is the terminal, immutable summary of one Delegate
// call.
type DelegationResult struct {
	// Success is true iff no execution failed.
	Success bool `json:"success"`

	// StopReason explains why the run ended.
	StopReason StopReason `json:"stop_reason"`

	// Results holds the successful agent outcomes in the order they were
	// recorded.
	Results []*AgentResult `json:"results"`

	// Errors holds the failed agent outcomes in the order they were
	// recorded.
	Errors []*AgentError `json:"errors,omitempty"`

	// TotalAgents is the number of agent executions spawned.
	TotalAgents int `json:"total_agents"`

	// MaxDepthReached is the context depth at the moment the run ended.
	MaxDepthReached int `json:"max_depth_reached"`

	// Elapsed is wall time for the whole run.
	Elapsed time.Duration `json:"elapsed"`

	// Iterations is the number of traversal iterations consumed.
	Iterations int `json:"iterations"`

	// Converged reports whether the stagnation count reached the budget
	// threshold.
	Converged bool `json:"converged"`

	// StagnationDetected reports whether any consecutive signatures
	// matched at all, even below the threshold.
	StagnationDetected bool `json:"stagnation_detected"`

	// NoveltySignature is the last signature the tracker computed, or ""
	// when convergence checking never ran.
	NoveltySignature string `json:"novelty_signature,omitempty"`

	// TotalUsage aggregates token consumption across all executions.
	TotalUsage TokenUsage `json:"total_usage"`

	// TotalCost aggregates estimated spend across all executions.
	TotalCost decimal.Decimal `json:"total_cost"`
}
