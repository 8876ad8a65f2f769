package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/agentswarm/core"
)

// runBFS executes one breadth-first pass: the root node, then its
// immediate children concurrently. A pass never descends past the first
// child level; deeper declared nodes are simply not visited.
func (e *Engine) runBFS(ctx context.Context, dctx *core.DelegationContext, node *core.ChildSpec, execCtx *core.ExecutionContext) {
	dctx.NextIteration()

	// The root always runs. Limits apply between units of work, never
	// before the first one.
	out := e.executeAgent(ctx, dctx, node.Agent, node.Prompt, execCtx)
	e.recordOutcome(dctx, out)
	e.feedTracker(out)

	if reason, stop := e.checkBoundaries(dctx); stop {
		e.recordStop(dctx, reason)
		return
	}

	if len(node.Children) == 0 {
		return
	}

	children := node.Children
	if len(children) > e.budget.MaxBreadth {
		e.logger.Debug("truncating fan-out to max breadth",
			"root_task_id", dctx.RootTaskID,
			"declared", len(children),
			"max_breadth", e.budget.MaxBreadth,
		)
		children = children[:e.budget.MaxBreadth]
	}

	// The children would run one level deeper; stop before descending if
	// that level is already out of bounds.
	if dctx.Depth()+1 >= e.budget.MaxDepth {
		e.recordStop(dctx, core.StopReasonDepthLimit)
		return
	}

	dctx.PushDepth()

	remaining := e.budget.MaxTotalAgents - dctx.Spawned()
	if remaining <= 0 {
		e.recordStop(dctx, core.StopReasonBreadthLimit)
		return
	}

	if len(children) > remaining {
		children = children[:remaining]
	}

	var wg sync.WaitGroup

	outcomes := make(chan outcome, len(children))

	for _, child := range children {
		wg.Add(1)

		go func(c *core.ChildSpec) {
			defer wg.Done()

			// A panic on another goroutine would escape the recover in
			// Delegate and take the process down. Contain it here so the
			// child fails alone.
			defer func() {
				if r := recover(); r != nil {
					e.logger.Error("child execution panicked", "agent", c.Agent, "panic", r)
					outcomes <- outcome{err: core.NewAgentError("", c.Agent, fmt.Errorf("agent panic: %v", r))}
				}
			}()

			outcomes <- e.executeAgent(ctx, dctx, c.Agent, c.Prompt, execCtx)
		}(child)
	}

	wg.Wait()
	close(outcomes)

	// Outcomes land in completion order, one tracker check per child.
	for out := range outcomes {
		e.recordOutcome(dctx, out)
		e.feedTracker(out)
	}

	if e.converged() {
		e.recordStop(dctx, core.StopReasonConverged)
	}
}
