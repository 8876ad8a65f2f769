package engine

import (
	"context"

	"github.com/hupe1980/agentswarm/core"
)

// runDFS executes node and then its declared subtree depth-first.
// Children run sequentially in declaration order, each child's whole
// branch settling before the next sibling starts. Every visited node
// costs one iteration.
func (e *Engine) runDFS(ctx context.Context, dctx *core.DelegationContext, node *core.ChildSpec, execCtx *core.ExecutionContext) {
	dctx.NextIteration()

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

	if dctx.Depth()+1 >= e.budget.MaxDepth {
		e.recordStop(dctx, core.StopReasonDepthLimit)
		return
	}

	dctx.PushDepth()
	defer dctx.PopDepth()

	for _, child := range node.Children {
		if dctx.Spawned() >= e.budget.MaxTotalAgents {
			e.recordStop(dctx, core.StopReasonBreadthLimit)
			return
		}

		if reason, stop := e.checkBoundaries(dctx); stop {
			e.recordStop(dctx, reason)
			return
		}

		e.runDFS(ctx, dctx, child, execCtx)

		if e.converged() {
			e.recordStop(dctx, core.StopReasonConverged)
			return
		}
	}
}
