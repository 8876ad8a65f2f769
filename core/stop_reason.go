package core

// StopReason explains why a delegation run stopped descending or stopped
// entirely.
type StopReason string

const (
	// StopReasonCompleted means the declared tree was fully executed
	// without hitting any limit.
	StopReasonCompleted StopReason = "completed"

	// StopReasonBudgetExhausted means the iteration limit was reached.
	StopReasonBudgetExhausted StopReason = "budget_exhausted"

	// StopReasonTimeout means elapsed wall time reached the limit.
	StopReasonTimeout StopReason = "timeout"

	// StopReasonDepthLimit means the next level would exceed the depth
	// limit.
	StopReasonDepthLimit StopReason = "depth_limit"

	// StopReasonBreadthLimit means the total agent limit left no room to
	// spawn further children.
	StopReasonBreadthLimit StopReason = "breadth_limit"

	// StopReasonConverged means consecutive batches of results produced
	// identical novelty signatures often enough to count as stagnation.
	StopReasonConverged StopReason = "converged"

	// StopReasonError means the run was cut short by a recovered panic.
	StopReasonError StopReason = "delegation_error"
)
