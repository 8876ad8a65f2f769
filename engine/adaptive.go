package engine

import "github.com/hupe1980/agentswarm/core"

// adaptiveDepthThreshold is the traversal depth at which adaptive
// dispatch switches from breadth-first to depth-first.
const adaptiveDepthThreshold = 2

// selectMode resolves the effective traversal strategy for the current
// run state. Fixed modes pass through unchanged; adaptive resolves by
// depth, once, at dispatch time. It holds no state of its own: a shallow
// run fans out breadth-first, a deep one descends depth-first.
func (e *Engine) selectMode(dctx *core.DelegationContext) core.TraversalMode {
	if e.mode != core.TraversalAdaptive {
		return e.mode
	}

	if dctx.Depth() < adaptiveDepthThreshold {
		return core.TraversalBFS
	}

	return core.TraversalDFS
}
