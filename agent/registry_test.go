package agent

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/model"
)

// captureModel records every request and replies with a fixed final
// response, standing in for a real provider.
type captureModel struct {
	mu        sync.Mutex
	reqs      []model.Request
	text      string
	toolCalls []model.ToolCall
	usage     *core.TokenUsage
	err       error
}

var _ model.Model = (*captureModel)(nil)

func newCaptureModel(text string) *captureModel {
	return &captureModel{
		text:  text,
		usage: &core.TokenUsage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}
}

func (c *captureModel) Generate(_ context.Context, req model.Request) (<-chan model.Response, <-chan error) {
	c.mu.Lock()
	c.reqs = append(c.reqs, req)
	c.mu.Unlock()

	respCh := make(chan model.Response, 1)
	errCh := make(chan error, 1)

	if c.err != nil {
		errCh <- c.err
	} else {
		respCh <- model.Response{Text: c.text, ToolCalls: c.toolCalls, FinishReason: "stop", Usage: c.usage}
	}

	close(respCh)
	close(errCh)

	return respCh, errCh
}

func (c *captureModel) Info() model.Info {
	return model.Info{Name: "capture", Provider: "test", SupportsTools: true}
}

func (c *captureModel) lastRequest(t *testing.T) model.Request {
	t.Helper()

	c.mu.Lock()
	defer c.mu.Unlock()
	require.NotEmpty(t, c.reqs, "model was never called")

	return c.reqs[len(c.reqs)-1]
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry()

	err := reg.Register(&Definition{Name: "researcher", Model: newCaptureModel("ok")})
	require.NoError(t, err)

	def, ok := reg.Get("researcher")
	require.True(t, ok)
	assert.Equal(t, "researcher", def.Name)

	_, ok = reg.Get("nope")
	assert.False(t, ok)
}

func TestRegistry_RegisterRejectsInvalidDefinitions(t *testing.T) {
	reg := NewRegistry()

	assert.Error(t, reg.Register(nil))
	assert.Error(t, reg.Register(&Definition{Model: newCaptureModel("ok")}))
	assert.Error(t, reg.Register(&Definition{Name: "no-model"}))
}

func TestRegistry_RegisterReplacesByName(t *testing.T) {
	reg := NewRegistry()

	first := &Definition{Name: "writer", Model: newCaptureModel("v1")}
	second := &Definition{Name: "writer", Model: newCaptureModel("v2")}

	require.NoError(t, reg.Register(first))
	require.NoError(t, reg.Register(second))

	def, ok := reg.Get("writer")
	require.True(t, ok)
	assert.Same(t, second, def)
}

func TestRegistry_Names(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(&Definition{Name: "writer", Model: newCaptureModel("ok")}))
	require.NoError(t, reg.Register(&Definition{Name: "critic", Model: newCaptureModel("ok")}))

	assert.Equal(t, []string{"critic", "writer"}, reg.Names())
}
