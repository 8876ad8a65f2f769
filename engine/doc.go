// Package engine implements the delegation scheduler for AgentSwarm.
//
// The Engine takes a root task plus a declared tree of child tasks and
// decides how much of that tree actually executes. The declared tree is a
// plan; the engine prunes it against a Budget (depth, breadth, total
// agents, wall time, iterations) and an optional stagnation detector, and
// returns one structured DelegationResult for the whole run.
//
// # Traversal strategies
//
// Three strategies walk the declared tree:
//
//   - BFS executes the root, then its immediate children concurrently on
//     goroutines. One pass never descends past the first child level.
//   - DFS executes nodes sequentially in declaration order, descending
//     into each child's subtree before moving to its sibling.
//   - Adaptive resolves to BFS or DFS once per run based on the current
//     traversal depth.
//
// # Budget enforcement
//
// Limits are checked between units of work in a fixed priority order:
// iterations, wall time, depth, total agents, convergence. The first
// limit that applies stops traversal and is recorded as the run's stop
// reason. The root task always executes before any limit is consulted,
// so a run performs at least one unit of work.
//
// # Failures are data
//
// A failing agent execution never aborts the run: the failure is
// converted to a *core.AgentError, recorded alongside the successful
// results, and traversal continues with the remaining siblings. Delegate
// itself has no error return; even a panic escaping a strategy is
// recovered into a result.
//
// # Convergence
//
// With convergence checking enabled, every recorded outcome feeds a
// shared convergence.Tracker. When consecutive outcomes stop producing
// novel evidence the run stops early instead of spending the remaining
// budget. The tracker persists across Delegate calls on one engine;
// ResetConvergence clears it.
//
// # Usage
//
//	eng, err := engine.New(executor, func(o *engine.Options) {
//	    o.Mode = core.TraversalBFS
//	    o.Budget = budget
//	    o.CheckConvergence = true
//	    o.EvidenceKeys = []string{"data.confidence"}
//	})
//	if err != nil {
//	    return err
//	}
//
//	result := eng.Delegate(ctx, "researcher", "Investigate the outage",
//	    nil,
//	    core.NewChildSpec("analyst", "Correlate the logs"),
//	    core.NewChildSpec("writer", "Draft the incident summary"),
//	)
package engine
