package engine

import "github.com/hupe1980/agentswarm/core"

// checkBoundaries evaluates the budget against the current run state in
// fixed priority order and returns the first limit that applies. The
// boolean reports whether traversal must stop. Order matters: a run that
// is simultaneously over several limits always reports the same reason.
func (e *Engine) checkBoundaries(dctx *core.DelegationContext) (core.StopReason, bool) {
	switch {
	case dctx.Iterations() >= e.budget.MaxIterations:
		return core.StopReasonBudgetExhausted, true
	case dctx.Elapsed() >= e.budget.MaxWallTime:
		return core.StopReasonTimeout, true
	case dctx.Depth() >= e.budget.MaxDepth:
		return core.StopReasonDepthLimit, true
	case dctx.Spawned() >= e.budget.MaxTotalAgents:
		return core.StopReasonBreadthLimit, true
	case e.converged():
		return core.StopReasonConverged, true
	default:
		return "", false
	}
}

// converged reports whether the stagnation detector has tripped. Always
// false when convergence checking is disabled.
func (e *Engine) converged() bool {
	return e.checkConvergence && e.tracker.Converged(e.budget.StagnationThreshold)
}

// recordStop notes the boundary that ended traversal on the run context.
// When several boundaries fire during one run the last one wins.
func (e *Engine) recordStop(dctx *core.DelegationContext, reason core.StopReason) {
	dctx.SetStopReason(reason)
	e.logger.Debug("delegation boundary reached",
		"root_task_id", dctx.RootTaskID,
		"reason", string(reason),
		"depth", dctx.Depth(),
		"spawned", dctx.Spawned(),
		"iterations", dctx.Iterations(),
	)
}
