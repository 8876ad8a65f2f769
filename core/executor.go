package core

import "context"

// Executor runs a single agent task. Implementations resolve the agent by
// name, run it against the given user message, and return either a result
// or an error. The engine treats a returned error as a per-task failure,
// not a reason to abort the run.
//
// sessionID carries the engine-generated task ID, so executions that share
// a session store can be correlated with the delegation that spawned them.
type Executor interface {
	Execute(ctx context.Context, agent, sessionID, userMessage string, execCtx *ExecutionContext) (*AgentResult, error)
}

// ExecutorFunc adapts an ordinary function to the Executor interface.
type ExecutorFunc func(ctx context.Context, agent, sessionID, userMessage string, execCtx *ExecutionContext) (*AgentResult, error)

// Execute implements Executor.
func (f ExecutorFunc) Execute(ctx context.Context, agent, sessionID, userMessage string, execCtx *ExecutionContext) (*AgentResult, error) {
	return f(ctx, agent, sessionID, userMessage, execCtx)
}
