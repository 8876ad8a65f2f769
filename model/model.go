package model

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hupe1980/agentswarm/core"
)

// Message is one turn of a normalized conversation. Role is "system",
// "user" or "assistant"; providers map it onto their own wire formats.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// SystemMessage builds a system-role message.
func SystemMessage(text string) Message { return Message{Role: "system", Text: text} }

// UserMessage builds a user-role message.
func UserMessage(text string) Message { return Message{Role: "user", Text: text} }

// AssistantMessage builds an assistant-role message.
func AssistantMessage(text string) Message { return Message{Role: "assistant", Text: text} }

// ToolCall represents a function call request surfaced by a model provider.
// Unified across vendors so downstream logic does not need per-provider branching.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"` // JSON string of arguments
}

// ToolDefinition declaratively exposes a callable function to the model.
type ToolDefinition struct {
	Type     string             `json:"type"` // "function"
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition describes an individual function (tool) exposed to the model.
// Parameters is a JSON Schema object (draft agnostic, minimal subset expected).
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"` // JSON Schema
}

// Request captures the normalized model input produced by the agent runner.
type Request struct {
	Instructions string           `json:"instructions"` // System-level instructions for the model
	Messages     []Message        `json:"messages"`
	Tools        []ToolDefinition `json:"tools,omitempty"`
	Stream       bool             `json:"stream,omitempty"`
}

// Response is a (partial or final) chunk emitted by a streaming model.
type Response struct {
	Partial      bool             `json:"partial"`
	Text         string           `json:"text"`
	ToolCalls    []ToolCall       `json:"tool_calls,omitempty"`
	FinishReason string           `json:"finish_reason,omitempty"` // "stop", "length", "tool_calls", etc.
	Usage        *core.TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name          string `json:"name"`
	Provider      string `json:"provider"` // "openai", "anthropic", "mock", etc.
	SupportsTools bool   `json:"supports_tools"`
}

// Model is the minimal interface required to drive generation for one agent.
type Model interface {
	Generate(ctx context.Context, req Request) (<-chan Response, <-chan error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
type MockModel struct {
	info      Info
	responses map[string]string
}

// NewMockModel constructs a MockModel with basic tool support enabled.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info: Info{
			Name:          name,
			Provider:      provider,
			SupportsTools: true,
		},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// Generate implements Model; emits optional streaming char chunks then final response.
func (m *MockModel) Generate(ctx context.Context, req Request) (<-chan Response, <-chan error) {
	respCh := make(chan Response, 16)
	errCh := make(chan error, 1)

	go func() {
		defer close(respCh)
		defer close(errCh)

		if len(req.Messages) == 0 {
			errCh <- fmt.Errorf("no messages provided")
			return
		}

		inputText := req.Messages[len(req.Messages)-1].Text

		full := m.responses[inputText]
		if full == "" {
			full = fmt.Sprintf("Mock response to: %s", inputText)
		}

		if req.Stream {
			for _, r := range full {
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				case respCh <- Response{Partial: true, Text: string(r)}:
				}
			}
		}

		prompt := approxTokens(req.Instructions)
		for _, msg := range req.Messages {
			prompt += approxTokens(msg.Text)
		}
		completion := approxTokens(full)

		respCh <- Response{
			Partial:      false,
			Text:         full,
			FinishReason: "stop",
			Usage: &core.TokenUsage{
				PromptTokens:     prompt,
				CompletionTokens: completion,
				TotalTokens:      prompt + completion,
			},
		}
	}()

	return respCh, errCh
}

// Info implements Model interface.
func (m *MockModel) Info() Info { return m.info }

// approxTokens is a crude word count so accounting paths downstream of the
// mock see non-zero usage.
func approxTokens(s string) int { return len(strings.Fields(s)) }
