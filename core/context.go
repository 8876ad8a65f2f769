package core

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DelegationContext carries the mutable state of one delegation run:
// depth, counters, recorded outcomes, and the stop reason. All methods are
// safe for concurrent use; BFS fan-out touches the same context from many
// goroutines.
//
// The context maintains the invariant
//
//	Spawned() == len(Results()) + len(Errors())
//
// once all in-flight executions have recorded their outcome.
type DelegationContext struct {
	// RootTaskID identifies the run. Set at construction, never changed.
	RootTaskID string

	// StartTime anchors the wall-time limit. Set at construction.
	StartTime time.Time

	mu         sync.Mutex
	depth      int
	spawned    int
	active     int
	completed  int
	iterations int
	results    []*AgentResult
	errs       []*AgentError
	stopReason StopReason
	usage      TokenUsage
	cost       decimal.Decimal
}

// NewDelegationContext creates a fresh context with a generated root task
// ID and the clock started.
func NewDelegationContext() *DelegationContext {
	return &DelegationContext{
		RootTaskID: uuid.NewString(),
		StartTime:  time.Now(),
	}
}

// Depth returns the current traversal depth.
func (c *DelegationContext) Depth() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.depth
}

// PushDepth increments the traversal depth before descending a level.
func (c *DelegationContext) PushDepth() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.depth++
}

// PopDepth decrements the traversal depth when a DFS visit unwinds. BFS
// never pops; its depth is monotonic within a run.
func (c *DelegationContext) PopDepth() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.depth > 0 {
		c.depth--
	}
}

// Spawned returns the number of agent executions started so far.
func (c *DelegationContext) Spawned() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.spawned
}

// Active returns the number of executions currently in flight.
func (c *DelegationContext) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.active
}

// Completed returns the number of executions that have finished, whether
// they succeeded or failed.
func (c *DelegationContext) Completed() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.completed
}

// Iterations returns the number of traversal iterations consumed.
func (c *DelegationContext) Iterations() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.iterations
}

// NextIteration consumes one traversal iteration and returns the new
// count.
func (c *DelegationContext) NextIteration() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.iterations++

	return c.iterations
}

// BeginAgent registers the start of one agent execution and returns its
// 1-based spawn index.
func (c *DelegationContext) BeginAgent() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.spawned++
	c.active++

	return c.spawned
}

// FinishAgent registers the end of one agent execution.
func (c *DelegationContext) FinishAgent() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.active--
	c.completed++
}

// RecordResult stores a successful outcome and folds its usage and cost
// into the run totals.
func (c *DelegationContext) RecordResult(result *AgentResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.results = append(c.results, result)
	c.usage.Add(result.Usage)
	c.cost = c.cost.Add(result.Cost)
}

// RecordError stores a failed outcome.
func (c *DelegationContext) RecordError(agentErr *AgentError) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errs = append(c.errs, agentErr)
}

// Results returns a copy of the successful outcomes in recorded order.
func (c *DelegationContext) Results() []*AgentResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*AgentResult, len(c.results))
	copy(out, c.results)

	return out
}

// Errors returns a copy of the failed outcomes in recorded order.
func (c *DelegationContext) Errors() []*AgentError {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*AgentError, len(c.errs))
	copy(out, c.errs)

	return out
}

// Elapsed returns wall time since the context was created.
func (c *DelegationContext) Elapsed() time.Duration {
	return time.Since(c.StartTime)
}

// SetStopReason records why traversal stopped. Later reasons overwrite
// earlier ones, so the context ends up holding the last boundary that
// fired.
func (c *DelegationContext) SetStopReason(reason StopReason) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopReason = reason
}

// StopReason returns the recorded stop reason, defaulting to
// StopReasonCompleted when no boundary ever fired.
func (c *DelegationContext) StopReason() StopReason {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stopReason == "" {
		return StopReasonCompleted
	}

	return c.stopReason
}

// TotalUsage returns the aggregated token usage of all recorded results.
func (c *DelegationContext) TotalUsage() TokenUsage {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.usage
}

// TotalCost returns the aggregated estimated cost of all recorded
// results.
func (c *DelegationContext) TotalCost() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cost
}
