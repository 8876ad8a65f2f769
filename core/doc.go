// Package core provides the foundational domain types and contracts used by
// AgentSwarm. It defines the core abstractions for:
//
//   - Budgets (multi-dimensional resource limits applied to a delegation run)
//   - Child specs (the caller-declared delegation tree)
//   - Delegation contexts (per-run counters, results, errors and timing)
//   - Agent results, agent errors and the terminal delegation summary
//   - Sessions (per-task transcript containers with event history)
//   - The Executor contract the engine hands agent execution to
//
// The package intentionally keeps implementation concerns (traversal
// strategies, convergence detection, model backends, persistence) out of
// scope, exposing small types and interfaces so the engine and the agent
// runtime can evolve independently.
package core
