package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/agentswarm/core"
)

// outcome is the settled result of one agent execution: exactly one of
// result or err is set.
type outcome struct {
	result *core.AgentResult
	err    *core.AgentError
}

// newTaskID builds the identifier for one execution:
// <agent>-<spawnIndex>-<fragment>, where the fragment is the first eight
// characters of a fresh uuid. The spawn index makes IDs readable in
// logs; the fragment keeps them unique across runs.
func newTaskID(agent string, spawnIndex int) string {
	return fmt.Sprintf("%s-%d-%s", agent, spawnIndex, uuid.NewString()[:8])
}

// executeAgent runs a single task through the executor and converts the
// outcome to data. It never returns an error: executor failures become
// *core.AgentError values for the caller to record. Counters are updated
// symmetrically, so active executions settle even when the executor
// fails.
func (e *Engine) executeAgent(ctx context.Context, dctx *core.DelegationContext, agent, prompt string, execCtx *core.ExecutionContext) outcome {
	if agent == "" {
		agent = e.defaultAgent
	}

	spawnIndex := dctx.BeginAgent()
	defer dctx.FinishAgent()

	taskID := newTaskID(agent, spawnIndex)
	depth := dctx.Depth()

	ctx, span := e.startTaskSpan(ctx, agent, taskID, depth)
	defer span.End()

	e.fireAgentSpawn(taskID, depth)

	e.logger.Debug("executing agent",
		"agent", agent,
		"task_id", taskID,
		"depth", depth,
	)

	start := time.Now()

	result, err := e.executor.Execute(ctx, agent, taskID, prompt, execCtx)
	if err != nil {
		agentErr := core.NewAgentError(taskID, agent, err)
		span.RecordError(agentErr)
		e.logger.Warn("agent execution failed",
			"agent", agent,
			"task_id", taskID,
			"elapsed", time.Since(start),
			"error", err,
		)

		return outcome{err: agentErr}
	}

	if result == nil {
		result = &core.AgentResult{}
	}

	if result.TaskID == "" {
		result.TaskID = taskID
	}

	if result.Agent == "" {
		result.Agent = agent
	}

	if result.Duration == 0 {
		result.Duration = time.Since(start)
	}

	e.fireAgentComplete(taskID, result)

	return outcome{result: result}
}

// recordOutcome stores one settled execution on the run context.
func (e *Engine) recordOutcome(dctx *core.DelegationContext, out outcome) {
	if out.err != nil {
		dctx.RecordError(out.err)
		return
	}

	dctx.RecordResult(out.result)
}

// feedTracker feeds one settled execution to the convergence tracker.
// Failures are fed like results; their evidence keys resolve to
// placeholders, so repeated failures register as stagnation.
func (e *Engine) feedTracker(out outcome) {
	if !e.checkConvergence {
		return
	}

	if out.err != nil {
		e.tracker.CheckNovelty(out.err)
		return
	}

	e.tracker.CheckNovelty(out.result)
}

// fireAgentSpawn invokes the spawn hook. Hook panics are contained: an
// observer must not be able to abort the run.
func (e *Engine) fireAgentSpawn(taskID string, depth int) {
	if e.onAgentSpawn == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("agent spawn hook panicked", "task_id", taskID, "panic", r)
		}
	}()

	e.onAgentSpawn(taskID, depth)
}

// fireAgentComplete invokes the completion hook. Hook panics are
// contained like in fireAgentSpawn.
func (e *Engine) fireAgentComplete(taskID string, result *core.AgentResult) {
	if e.onAgentComplete == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("agent complete hook panicked", "task_id", taskID, "panic", r)
		}
	}()

	e.onAgentComplete(taskID, result)
}
