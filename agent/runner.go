package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hupe1980/agentswarm/core"
	"github.com/hupe1980/agentswarm/internal/util"
	"github.com/hupe1980/agentswarm/model"
	"github.com/hupe1980/agentswarm/tool"
)

var _ core.Executor = (*Registry)(nil)

// Execute implements core.Executor: it resolves the named definition,
// replays the task session, drives the model to completion and assembles
// the result. A returned error describes this task only; the caller decides
// how the failure affects the wider run.
func (r *Registry) Execute(
	ctx context.Context,
	agentName, sessionID, userMessage string,
	execCtx *core.ExecutionContext,
) (*core.AgentResult, error) {
	def, ok := r.Get(agentName)
	if !ok {
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnknownAgent, agentName, r.describe())
	}

	if execCtx == nil {
		execCtx = &core.ExecutionContext{}
	}

	start := time.Now()

	r.logger.Debug("executing agent", "agent", agentName, "task_id", sessionID)

	sess, err := r.store.Get(sessionID)
	if err != nil {
		if sess, err = r.store.Create(sessionID); err != nil {
			return nil, fmt.Errorf("create session %s: %w", sessionID, err)
		}
	}

	req, err := r.buildRequest(ctx, def, sess, userMessage, execCtx)
	if err != nil {
		return nil, err
	}

	if err := r.store.AppendEvent(sessionID, core.NewUserEvent(userMessage)); err != nil {
		return nil, fmt.Errorf("append user event: %w", err)
	}

	final, err := drainModel(ctx, def.Model, req)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", agentName, err)
	}

	usage := core.TokenUsage{}
	if final.Usage != nil {
		usage = *final.Usage
	}

	if err := r.store.AppendEvent(sessionID, core.NewAssistantEvent(def.Name, final.Text)); err != nil {
		return nil, fmt.Errorf("append assistant event: %w", err)
	}

	if def.OutputKey != "" {
		if err := r.store.ApplyDelta(sessionID, map[string]any{def.OutputKey: final.Text}); err != nil {
			return nil, fmt.Errorf("apply output delta: %w", err)
		}
	}

	duration := time.Since(start)

	r.logger.Info("agent execution complete",
		"agent", agentName,
		"task_id", sessionID,
		"duration", duration,
		"tokens", usage.TotalTokens,
	)

	return &core.AgentResult{
		TaskID:   sessionID,
		Agent:    def.Name,
		Output:   final.Text,
		Data:     resultData(final),
		Usage:    usage,
		Cost:     def.pricing().CostFor(usage),
		Duration: duration,
	}, nil
}

// buildRequest assembles the normalized model request: rendered
// instructions, the replayed transcript plus the current task prompt, and
// the definition's tools merged with any tools carried by the execution
// context.
func (r *Registry) buildRequest(
	ctx context.Context,
	def *Definition,
	sess *core.Session,
	userMessage string,
	execCtx *core.ExecutionContext,
) (model.Request, error) {
	instructions, err := def.Instruction.Resolve(ctx, sess)
	if err != nil {
		return model.Request{}, fmt.Errorf("resolve instructions: %w", err)
	}

	if instructions == "" {
		instructions = fmt.Sprintf("You are %s, a helpful AI assistant.", def.Name)
	}

	// sess is a store clone, so reading state directly is safe here.
	data := make(map[string]any, len(sess.State)+3)
	for k, v := range sess.State {
		data[k] = v
	}
	data["agent_name"] = def.Name
	data["task_id"] = sess.ID
	if len(execCtx.Skills) > 0 {
		data["skills"] = execCtx.Skills
	}

	instructions, err = util.RenderTemplate(instructions, data)
	if err != nil {
		return model.Request{}, fmt.Errorf("render instructions: %w", err)
	}

	messages := transcriptMessages(sess, def.maxHistory())
	messages = append(messages, model.UserMessage(userMessage))

	toolset := def.Tools
	if extra, ok := execCtx.Tools.([]tool.Tool); ok && len(extra) > 0 {
		toolset = append(append([]tool.Tool{}, def.Tools...), extra...)
	}

	return model.Request{
		Instructions: instructions,
		Messages:     messages,
		Tools:        tool.Definitions(toolset),
		Stream:       def.EnableStreaming,
	}, nil
}

// transcriptMessages converts the replayable tail of the session history
// into normalized messages.
func transcriptMessages(sess *core.Session, maxHistory int) []model.Message {
	transcript := sess.Transcript()
	if maxHistory > 0 && len(transcript) > maxHistory {
		transcript = transcript[len(transcript)-maxHistory:]
	}

	messages := make([]model.Message, 0, len(transcript)+1)
	for _, ev := range transcript {
		messages = append(messages, model.Message{Role: ev.Role, Text: ev.Text})
	}

	return messages
}

// drainModel consumes the generation channels, skipping partial chunks, and
// returns the final response.
func drainModel(ctx context.Context, m model.Model, req model.Request) (*model.Response, error) {
	respCh, errCh := m.Generate(ctx, req)

	var final *model.Response

	for resp := range respCh {
		if resp.Partial {
			continue
		}

		r := resp
		final = &r
	}

	if err := <-errCh; err != nil {
		return nil, err
	}

	if final == nil {
		return nil, errors.New("model returned no final response")
	}

	return final, nil
}

// resultData extracts structured data from the final response: an output
// that is a JSON object becomes the result data, and requested tool calls
// are surfaced under "tool_calls" for the caller to execute.
func resultData(final *model.Response) map[string]any {
	var data map[string]any

	trimmed := strings.TrimSpace(final.Text)
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal([]byte(trimmed), &data); err != nil {
			data = nil
		}
	}

	if len(final.ToolCalls) > 0 {
		if data == nil {
			data = make(map[string]any, 1)
		}
		data["tool_calls"] = final.ToolCalls
	}

	return data
}
